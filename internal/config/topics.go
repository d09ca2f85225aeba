package config

const (
	// TopicCollect is the NSQ topic for signal collection tasks.
	TopicCollect = "signals.collect"
)
