package sqlinline

const QInsertSponsorship = `--sql 55f62ac2-e150-4dda-8d20-fb284b64becf
insert into sponsorships (id, cluster_id, specific_id, beneficiary_id, start_date, status, created_at)
values ($1::uuid, $2::text, $3::text, $4::uuid, $5::date, 'active', now());
`

const QEndSponsorship = `--sql 59da20c4-6b74-4237-956c-1e4532567756
update sponsorships
set status = 'ended',
    end_date = $2::date
where id = $1::uuid
  and status = 'active'
returning cluster_id, specific_id, beneficiary_id;
`

const QSelectSponsorshipByID = `--sql 2eb79633-36c4-4980-9ee9-9cfe7e201e78
select id, cluster_id, specific_id, beneficiary_id, start_date, end_date, status, created_at
from sponsorships
where id = $1::uuid;
`

const QListSponsorshipsBySponsor = `--sql e32fca9a-b329-4d95-a866-e20904e41854
select id, cluster_id, specific_id, beneficiary_id, start_date, end_date, status, created_at
from sponsorships
where cluster_id = $1::text
  and specific_id = $2::text
order by start_date desc;
`

const QListSponsorshipsByBeneficiary = `--sql c2e2b146-9a05-4320-8a73-45a7d41b8855
select id, cluster_id, specific_id, beneficiary_id, start_date, end_date, status, created_at
from sponsorships
where beneficiary_id = $1::uuid
order by start_date desc;
`
