package sqlinline

const QInsertEmployee = `--sql bd6bcce5-a834-4639-b395-d89eceadce9f
insert into employees (id, full_name, email, password_hash, role, active, created_at, updated_at)
values ($1::uuid, $2::text, $3::text, $4::text, $5::text, true, now(), now());
`

const QSelectEmployeeByEmail = `--sql 69ea4d88-88e7-4398-b3fc-57402d803331
select id, full_name, email, password_hash, role, active, created_at, updated_at
from employees
where email = $1::text;
`

const QSelectEmployeeByID = `--sql ecf78a07-71a0-4fcd-9061-2b93cfa55bd9
select id, full_name, email, password_hash, role, active, created_at, updated_at
from employees
where id = $1::uuid;
`

const QListEmployees = `--sql 3232c4ac-6e05-496c-9d23-e556dbe78139
select id, full_name, email, password_hash, role, active, created_at, updated_at
from employees
order by full_name;
`

const QSetEmployeeActive = `--sql a7e8ccf5-8241-4e2a-989c-500287f5ba2c
update employees
set active = $2::boolean,
    updated_at = now()
where id = $1::uuid;
`
