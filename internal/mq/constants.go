package mq

// Queue names and message definitions

// immediate queue from the HTTP layer to the audit workflow
// deliver message to record a catalog or auth event in the audit log
const (
	AuditImmediateQueue = "catalog.audit.record.immediate"
)

// audit actions
const (
	AuditActionMovieCreate  = "movie.create"
	AuditActionMovieUpdate  = "movie.update"
	AuditActionMovieDelete  = "movie.delete"
	AuditActionLoginSuccess = "login.success"
	AuditActionLoginFailure = "login.failure"
)

type AuditMessage struct {
	Action  string `json:"action"`
	ActorID uint   `json:"actor_id"`
	MovieID *uint  `json:"movie_id,omitempty"`
	Detail  string `json:"detail,omitempty"`
}
