package sqlinline

const QInsertNotification = `--sql 0db00a5b-e4b3-4eae-a08f-b69d2fe1f5e9
insert into notifications (id, cluster_id, specific_id, message, notification_type, priority, is_read, created_at)
values ($1::uuid, nullif($2::text, ''), nullif($3::text, ''), $4::text, $5::text, $6::text, false, now());
`

const QListNotifications = `--sql ee8029ec-e72f-47a2-9a5f-b5e7dc8a17b5
select id, coalesce(cluster_id, ''), coalesce(specific_id, ''), message, notification_type, priority, is_read, read_at, created_at
from notifications
where ($1::text = '' or cluster_id = $1::text)
  and ($2::text = '' or specific_id = $2::text)
  and (not $3::boolean or is_read = false)
order by created_at desc
limit $4::int;
`

const QMarkNotificationRead = `--sql c739faf6-39b6-4e7e-a317-829c3d03b7e8
update notifications
set is_read = true,
    read_at = $2::timestamptz
where id = $1::uuid
  and is_read = false;
`

const QDeleteNotification = `--sql 155eec6d-c2c2-4bf6-a300-35f22063b7d4
delete from notifications
where id = $1::uuid;
`

const QCountNotificationsToday = `--sql 323c87e2-53a4-4ba2-8ebe-ec77f3d37839
select count(*)
from notifications
where cluster_id = $1::text
  and specific_id = $2::text
  and notification_type = $3::text
  and created_at::date = current_date;
`
