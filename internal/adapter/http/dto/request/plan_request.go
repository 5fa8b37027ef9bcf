package request

import (
	"encoding/json"
	"strings"
)

// PlanRequest is the payload for draft/submit/resubmit actions. Schedule
// is passed through raw: the domain layer owns extraction of the lesson
// count with its zero-on-ambiguity defaults.
type PlanRequest struct {
	StudentID string          `json:"student_id" binding:"required"`
	Version   int64           `json:"version"`
	Schedule  json.RawMessage `json:"schedule"`
}

func (r PlanRequest) ResolveStudentID() string {
	return strings.TrimSpace(r.StudentID)
}

// ReviewRequest is the payload for approve/reject actions. Reason is
// required for rejections only; the acting admin comes from the auth
// middleware, never from the body.
type ReviewRequest struct {
	StudentID string `json:"student_id" binding:"required"`
	Version   int64  `json:"version"`
	Reason    string `json:"reason"`
}

func (r ReviewRequest) ResolveStudentID() string {
	return strings.TrimSpace(r.StudentID)
}
