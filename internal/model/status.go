package model

// Program kinds. service_category is only meaningful for services.
const (
	KindService = "service"
	KindProject = "project"
)

// Program statuses.
const (
	ProgramDraft     = "draft"
	ProgramPublished = "published"
	ProgramUpcoming  = "upcoming"
	ProgramCompleted = "completed"
)

// Service categories.
const (
	CategoryEssential     = "essential"
	CategoryCommunity     = "community"
	CategoryComplementary = "complementary"
)

// Application statuses.
const (
	ApplicationApplied    = "applied"
	ApplicationAccepted   = "accepted"
	ApplicationInProgress = "in_progress"
	ApplicationOnHold     = "on_hold"
	ApplicationCompleted  = "completed"
	ApplicationWithdrawn  = "withdrawn"
	ApplicationRejected   = "rejected"
)

// Task statuses.
const (
	TaskNew        = "new"
	TaskInProgress = "in_progress"
	TaskOnHold     = "on_hold"
	TaskDone       = "done"
	TaskCancelled  = "cancelled"
)

// User roles. A user carries exactly one role; is_admin bypasses role checks.
const (
	RoleVolunteer        = "volunteer"
	RoleServiceManager   = "service_manager"
	RoleProjectManager   = "project_manager"
	RoleVolunteerManager = "volunteer_manager"
)

const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// Education levels.
const (
	EduHighSchool = "hs"
	EduDiploma    = "diploma"
	EduBachelor   = "bachelor"
	EduMaster     = "master"
	EduPhD        = "phd"
	EduOther      = "other"
)

// ApplicationTransitions is the permitted transition table for application
// statuses. Restricting a transition is a table edit, not a code change.
// Withdraw is allowed from any non-terminal state; completed and rejected
// applications cannot be withdrawn.
var ApplicationTransitions = map[string][]string{
	ApplicationApplied:    {ApplicationAccepted, ApplicationRejected, ApplicationWithdrawn},
	ApplicationAccepted:   {ApplicationInProgress, ApplicationOnHold, ApplicationCompleted, ApplicationWithdrawn},
	ApplicationInProgress: {ApplicationOnHold, ApplicationCompleted, ApplicationWithdrawn},
	ApplicationOnHold:     {ApplicationInProgress, ApplicationCompleted, ApplicationWithdrawn},
	ApplicationCompleted:  {},
	ApplicationRejected:   {},
	ApplicationWithdrawn:  {},
}

// TaskTransitions currently permits every pair of enumerated task statuses;
// the table exists so tightening it later is a data change.
var TaskTransitions = map[string][]string{
	TaskNew:        {TaskInProgress, TaskOnHold, TaskDone, TaskCancelled},
	TaskInProgress: {TaskNew, TaskOnHold, TaskDone, TaskCancelled},
	TaskOnHold:     {TaskNew, TaskInProgress, TaskDone, TaskCancelled},
	TaskDone:       {TaskNew, TaskInProgress, TaskOnHold, TaskCancelled},
	TaskCancelled:  {TaskNew, TaskInProgress, TaskOnHold, TaskDone},
}

func canTransition(table map[string][]string, from, to string) bool {
	next, ok := table[from]
	if !ok {
		return false
	}
	for _, s := range next {
		if s == to {
			return true
		}
	}
	return false
}

// ApplicationCanTransition reports whether an application may move from one
// status to another.
func ApplicationCanTransition(from, to string) bool {
	return canTransition(ApplicationTransitions, from, to)
}

// TaskCanTransition reports whether a task may move from one status to another.
func TaskCanTransition(from, to string) bool {
	return canTransition(TaskTransitions, from, to)
}

// ValidTaskStatus reports whether s is an enumerated task status.
func ValidTaskStatus(s string) bool {
	_, ok := TaskTransitions[s]
	return ok
}

// ValidApplicationStatus reports whether s is an enumerated application status.
func ValidApplicationStatus(s string) bool {
	_, ok := ApplicationTransitions[s]
	return ok
}
