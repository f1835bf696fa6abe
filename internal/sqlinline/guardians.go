package sqlinline

const QInsertGuardian = `--sql e7ead06f-17b9-4d17-9679-a772447aa487
insert into guardians (id, full_name, relation, phone, address, created_at)
values ($1::uuid, $2::text, $3::text, $4::text, $5::text, now());
`

const QUpdateGuardian = `--sql 0204833d-78ac-4500-9bbf-872f8db0a31c
update guardians
set full_name = $2::text,
    relation = $3::text,
    phone = $4::text,
    address = $5::text
where id = $1::uuid;
`

const QSelectGuardianByID = `--sql f397048e-0b3a-44d1-991a-d2be1091c695
select id, full_name, relation, phone, address, created_at
from guardians
where id = $1::uuid;
`

const QListGuardians = `--sql f569ed93-b833-47f5-990d-def8dd523ba2
select id, full_name, relation, phone, address, created_at
from guardians
order by full_name
limit $1::int offset $2::int;
`
