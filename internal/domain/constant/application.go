package constant

// ApplicationStatus tracks how far an application has progressed.
type ApplicationStatus string

const (
	StatusNotStarted         ApplicationStatus = "not_started"
	StatusInProgress         ApplicationStatus = "in_progress"
	StatusMaterialsUploaded  ApplicationStatus = "materials_uploaded"
	StatusSubmitted          ApplicationStatus = "submitted"
	StatusUnderReview        ApplicationStatus = "under_review"
	StatusInterviewScheduled ApplicationStatus = "interview_scheduled"
	StatusDecisionMade       ApplicationStatus = "decision_made"
	StatusCompleted          ApplicationStatus = "completed"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusMaterialsUploaded, StatusSubmitted,
		StatusUnderReview, StatusInterviewScheduled, StatusDecisionMade, StatusCompleted:
		return true
	}
	return false
}

// InProgress reports whether the applicant is still preparing materials.
func (s ApplicationStatus) InProgress() bool {
	return s == StatusInProgress || s == StatusMaterialsUploaded
}

// Submitted reports whether the application has left the applicant's hands.
func (s ApplicationStatus) Submitted() bool {
	switch s {
	case StatusSubmitted, StatusUnderReview, StatusInterviewScheduled, StatusDecisionMade, StatusCompleted:
		return true
	}
	return false
}

type Decision string

const (
	DecisionAccepted   Decision = "accepted"
	DecisionRejected   Decision = "rejected"
	DecisionWaitlisted Decision = "waitlisted"
	DecisionDeferred   Decision = "deferred"
)

func (d Decision) Valid() bool {
	switch d {
	case DecisionAccepted, DecisionRejected, DecisionWaitlisted, DecisionDeferred:
		return true
	}
	return false
}

type DegreeType string

const (
	DegreeBachelor DegreeType = "bachelor"
	DegreeMaster   DegreeType = "master"
	DegreePhD      DegreeType = "phd"
)

func (d DegreeType) Valid() bool {
	return d == DegreeBachelor || d == DegreeMaster || d == DegreePhD
}
