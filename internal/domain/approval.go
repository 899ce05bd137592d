package domain

type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "pending"
	ApprovalStatusApproved ApprovalStatus = "approved"
	ApprovalStatusRejected ApprovalStatus = "rejected"
)

// IsDecision indica se o status é uma decisão final (approved ou rejected)
func (s ApprovalStatus) IsDecision() bool {
	return s == ApprovalStatusApproved || s == ApprovalStatusRejected
}

type ContentApproval struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	CanvaLink   string         `json:"canvaLink"`
	Status      ApprovalStatus `json:"status"`
	DateCreated Date           `json:"dateCreated"`
	Notes       string         `json:"notes,omitempty"`
}

func CountPendingApprovals(approvals []ContentApproval) int {
	count := 0
	for _, a := range approvals {
		if a.Status == ApprovalStatusPending {
			count++
		}
	}
	return count
}
