package redisstore

import "time"

const (
	// Last view per account: session:last_view:{account_id} -> view name
	keyLastView = "session:last_view:%s"

	// Draft intake form per account: session:order_draft:{account_id} -> JSON
	keyOrderDraft = "session:order_draft:%s"
)

var (
	ttlLastView   = 7 * 24 * time.Hour
	ttlOrderDraft = 24 * time.Hour
)
