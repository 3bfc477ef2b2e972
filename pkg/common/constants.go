package common

const (
	// RedisStreamJobExecution carries queued dataset generation jobs.
	RedisStreamJobExecution = "datagen.job.execution"

	RedisStreamGroup    = "generator-group"
	RedisStreamConsumer = "generator-consumer"
)
