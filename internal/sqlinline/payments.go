package sqlinline

const QInsertPayment = `--sql ba4178f4-39cd-4b01-8bdf-3f8b1cc049ca
insert into payments (id, cluster_id, specific_id, start_month, end_month, year, amount_int, status, created_at)
values ($1::uuid, $2::text, $3::text, $4::int, nullif($5::int, 0), $6::int, $7::bigint, 'pending', now());
`

const QSelectPaymentByID = `--sql 0d68402e-5991-4767-8e67-0c530934d6a9
select id, cluster_id, specific_id, start_month, coalesce(end_month, 0), year, amount_int, status, confirmed_at, confirmed_by, created_at
from payments
where id = $1::uuid;
`

const QListPaymentsBySponsor = `--sql ce79f609-a5c8-46fb-bf52-9df46f05f360
select id, cluster_id, specific_id, start_month, coalesce(end_month, 0), year, amount_int, status, confirmed_at, confirmed_by, created_at
from payments
where cluster_id = $1::text
  and specific_id = $2::text
order by year desc, coalesce(end_month, start_month) desc, created_at desc;
`

const QListConfirmedPaymentsBySponsor = `--sql a9064c9f-97b3-4f8c-b222-5f27c944b180
select id, cluster_id, specific_id, start_month, coalesce(end_month, 0), year, amount_int, status, confirmed_at, confirmed_by, created_at
from payments
where cluster_id = $1::text
  and specific_id = $2::text
  and status = 'confirmed'
order by year desc, coalesce(end_month, start_month) desc;
`

const QConfirmPayment = `--sql c3323562-22a2-4cc4-a976-a36b90e6d937
update payments
set status = 'confirmed',
    confirmed_at = $3::timestamptz,
    confirmed_by = $2::uuid
where id = $1::uuid
  and status = 'pending'
returning id, cluster_id, specific_id, start_month, coalesce(end_month, 0), year, amount_int, status, confirmed_at, confirmed_by, created_at;
`
