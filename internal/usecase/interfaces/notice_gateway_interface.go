package interfaces

import "context"

// NoticeMessage is one outgoing debt notice, ready to send.
type NoticeMessage struct {
	To       []string
	Subject  string
	HTMLBody string
}

// INoticeGateway abstracts the outbound mail transport (SMTP in production).
//
// Send returns the transport's message id when it has one; the usecase
// stores it on the send log for traceability.
type INoticeGateway interface {
	Send(ctx context.Context, msg NoticeMessage) (messageID string, err error)
}
