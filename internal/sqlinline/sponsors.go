// Package sqlinline holds every SQL statement the service runs, one constant
// per statement. The first line of each constant is a marker consumed by
// infra.SQLRunner for log correlation; the statement itself starts on the
// second line.
package sqlinline

const QInsertSponsor = `--sql f9f4d072-a9d5-460c-a443-436a84e442cd
insert into sponsors (cluster_id, specific_id, full_name, phone, email, address, monthly_amount_int, status, diaspora, locale, agreed_date, created_at, updated_at)
values ($1::text, $2::text, $3::text, $4::text, $5::text, $6::text, $7::bigint, $8::text, $9::boolean, $10::text, $11::date, now(), now());
`

const QUpdateSponsor = `--sql 1bdd5bf5-5dba-4d49-90c5-72745dd0bb91
update sponsors
set full_name = $3::text,
    phone = $4::text,
    email = $5::text,
    address = $6::text,
    monthly_amount_int = $7::bigint,
    diaspora = $8::boolean,
    locale = $9::text,
    updated_at = now()
where cluster_id = $1::text
  and specific_id = $2::text;
`

const QSelectSponsorByID = `--sql dc9afa49-20eb-40e3-8396-be7325b2ab1a
select cluster_id, specific_id, full_name, phone, email, address, monthly_amount_int, status, diaspora, locale, agreed_date, created_at, updated_at
from sponsors
where cluster_id = $1::text
  and specific_id = $2::text;
`

const QListSponsors = `--sql 82622e55-96c4-4182-adc5-45e9518c8574
select cluster_id, specific_id, full_name, phone, email, address, monthly_amount_int, status, diaspora, locale, agreed_date, created_at, updated_at
from sponsors
where ($1::text = '' or status = $1::text)
order by cluster_id, specific_id
limit $2::int offset $3::int;
`

const QListActiveSponsors = `--sql 80975788-506d-44c9-9eab-b2f0e9cf8d2f
select cluster_id, specific_id, full_name, phone, email, address, monthly_amount_int, status, diaspora, locale, agreed_date, created_at, updated_at
from sponsors
where status = 'active'
order by cluster_id, specific_id;
`

const QSetSponsorStatus = `--sql a24d3ab3-812a-40df-b89d-a4c90a16131c
update sponsors
set status = $3::text,
    updated_at = now()
where cluster_id = $1::text
  and specific_id = $2::text;
`
