package sqlinline

const QInsertDocument = `--sql 83faf153-b91c-401b-8256-cd198ecd1fd3
insert into documents (id, cluster_id, specific_id, beneficiary_id, title, file_name, mime_type, storage_key, uploaded_by, created_at)
values ($1::uuid, nullif($2::text, ''), nullif($3::text, ''), nullif($4::text, '')::uuid, $5::text, $6::text, $7::text, $8::text, $9::uuid, now());
`

const QSelectDocumentByID = `--sql 5d0e8ff8-78cf-4a67-b1ed-426ccd989832
select id, coalesce(cluster_id, ''), coalesce(specific_id, ''), beneficiary_id, title, file_name, mime_type, storage_key, uploaded_by, created_at
from documents
where id = $1::uuid;
`

const QListDocumentsBySponsor = `--sql 155a24dc-9a4b-4be2-8e34-b88537588fc7
select id, coalesce(cluster_id, ''), coalesce(specific_id, ''), beneficiary_id, title, file_name, mime_type, storage_key, uploaded_by, created_at
from documents
where cluster_id = $1::text
  and specific_id = $2::text
order by created_at desc;
`

const QDeleteDocument = `--sql 5b6e56a9-d8bf-4cc9-88b9-b11381b40f12
delete from documents
where id = $1::uuid;
`
