package domain

// Decision is the outcome of comparing detected labels against the target label.
type Decision string

const (
	DecisionMatch    Decision = "match"
	DecisionMismatch Decision = "mismatch"
)

// NotificationProvider selects the NotificationPublisher implementation.
type NotificationProvider string

const (
	NotificationProviderSNS  NotificationProvider = "sns"
	NotificationProviderSES  NotificationProvider = "ses"
	NotificationProviderNoop NotificationProvider = "noop"
)

// IsValid reports whether p names a supported provider.
func (p NotificationProvider) IsValid() bool {
	switch p {
	case NotificationProviderSNS, NotificationProviderSES, NotificationProviderNoop:
		return true
	}
	return false
}
