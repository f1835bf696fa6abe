package sqlinline

const QInsertBeneficiary = `--sql 0b3bf6dd-6a56-467f-b11e-3cc87091df40
insert into beneficiaries (id, beneficiary_type, full_name, date_of_birth, gender, guardian_id, status, support_details, created_at, updated_at)
values ($1::uuid, $2::text, $3::text, $4::date, $5::text, nullif($6::text, '')::uuid, $7::text, $8::text, now(), now());
`

const QUpdateBeneficiary = `--sql 58cc2366-277d-42c7-99d6-a65affcc52b1
update beneficiaries
set full_name = $2::text,
    date_of_birth = $3::date,
    gender = $4::text,
    guardian_id = nullif($5::text, '')::uuid,
    status = $6::text,
    support_details = $7::text,
    updated_at = now()
where id = $1::uuid;
`

const QSelectBeneficiaryByID = `--sql 0b09b25a-f7d7-454c-bc8a-766f884ce1ca
select id, beneficiary_type, full_name, date_of_birth, gender, guardian_id, status, support_details, created_at, updated_at
from beneficiaries
where id = $1::uuid;
`

const QListBeneficiaries = `--sql 5656d252-9c27-425c-9eb9-d81e4a4c3205
select id, beneficiary_type, full_name, date_of_birth, gender, guardian_id, status, support_details, created_at, updated_at
from beneficiaries
where ($1::text = '' or beneficiary_type = $1::text)
  and ($2::text = '' or status = $2::text)
order by created_at desc
limit $3::int offset $4::int;
`

const QDeleteBeneficiary = `--sql 73e1f3fe-dd51-4d2a-b72a-bf133775a0af
delete from beneficiaries
where id = $1::uuid;
`
