package sqlinline

const QStatsSummary = `--sql 515c5eb2-3291-4e1c-8f4b-995ba5cc2bc3
select
    (select count(*) from sponsors where status = 'active') as active_sponsors,
    (select coalesce(sum(monthly_amount_int), 0) from sponsors where status = 'active') as monthly_pledged_int,
    (select count(*) from beneficiaries where status = 'assigned') as assigned_beneficiaries,
    (select count(*) from beneficiaries where status = 'waiting') as waiting_beneficiaries,
    (select count(*) from notifications where is_read = false) as unread_notifications,
    (select count(*) from payments where status = 'confirmed' and confirmed_at >= date_trunc('month', now())) as payments_confirmed_this_month,
    (select count(distinct (cluster_id, specific_id)) from notifications where notification_type = 'payment_due' and created_at >= now() - interval '30 days') as sponsors_overdue_30d;
`
