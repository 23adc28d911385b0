package taskapimodels

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/old-buffalo/task-management/models"
)

var ErrInvalidPayload = errors.New("Invalid payload")

type CreateTaskRequest struct {
	Title        string              `json:"title"`
	Description  *string             `json:"description"`
	Priority     models.TaskPriority `json:"priority"`
	DueDate      *time.Time          `json:"due_date"`
	AssignedTo   *string             `json:"assigned_to"`
	TeamID       *string             `json:"team_id"`
	WorkspaceID  *string             `json:"workspace_id"`
	DepartmentID *string             `json:"department_id"`
}

func (r CreateTaskRequest) Validate() error {
	if len(r.Title) < 3 || len(r.Title) > 200 {
		return ErrInvalidPayload
	}
	if r.Description != nil && len(*r.Description) > 5000 {
		return ErrInvalidPayload
	}
	if r.Priority != "" && !r.Priority.IsValid() {
		return ErrInvalidPayload
	}
	for _, id := range []*string{r.AssignedTo, r.TeamID, r.WorkspaceID, r.DepartmentID} {
		if id != nil && uuid.Validate(*id) != nil {
			return ErrInvalidPayload
		}
	}
	return nil
}

type CreateCommentRequest struct {
	Content      string  `json:"content"`
	AttachmentID *string `json:"attachment_id"`
}

func (r CreateCommentRequest) Validate() error {
	if len(r.Content) < 1 || len(r.Content) > 2000 {
		return ErrInvalidPayload
	}
	if r.AttachmentID != nil && uuid.Validate(*r.AttachmentID) != nil {
		return ErrInvalidPayload
	}
	return nil
}

// Filter mirrors the task listing query params. All filters are conjunctive;
// the free-text query alone fans out to title OR description.
type Filter struct {
	Status      string
	TeamID      string
	WorkspaceID string
	AssignedTo  string
	CreatedBy   string
	Query       string
	Has         string
}

const maxSearchLen = 200

// SearchText strips the OR-clause delimiter and bounds the length before the
// text is wrapped into a substring pattern.
func (f Filter) SearchText() string {
	text := strings.TrimSpace(f.Query)
	if text == "" {
		return ""
	}
	text = strings.ReplaceAll(text, ",", " ")
	if len(text) > maxSearchLen {
		text = text[:maxSearchLen]
	}
	return text
}

// HasKinds splits the "has" param into the requested presence kinds.
func (f Filter) HasKinds() []string {
	if f.Has == "" {
		return nil
	}
	var kinds []string
	for _, kind := range strings.Split(f.Has, ",") {
		kind = strings.TrimSpace(kind)
		if kind != "" {
			kinds = append(kinds, kind)
		}
	}
	return kinds
}

// ParseUpdate validates a strict task patch: unknown fields are rejected and
// every known field is checked before it lands in the update map. Nullable
// fields accept an explicit null to clear the column.
func ParseUpdate(data []byte) (map[string]interface{}, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, ErrInvalidPayload
	}
	upd := map[string]interface{}{}
	for key, val := range raw {
		switch key {
		case "title":
			title, err := decodeString(val)
			if err != nil || title == nil || len(*title) < 3 || len(*title) > 200 {
				return nil, ErrInvalidPayload
			}
			upd["title"] = *title
		case "description":
			text, err := decodeString(val)
			if err != nil || (text != nil && len(*text) > 5000) {
				return nil, ErrInvalidPayload
			}
			upd["description"] = text
		case "status":
			status, err := decodeString(val)
			if err != nil || status == nil || !models.TaskStatus(*status).IsValid() {
				return nil, ErrInvalidPayload
			}
			upd["status"] = *status
		case "priority":
			priority, err := decodeString(val)
			if err != nil || priority == nil || !models.TaskPriority(*priority).IsValid() {
				return nil, ErrInvalidPayload
			}
			upd["priority"] = *priority
		case "due_date":
			due, err := decodeTime(val)
			if err != nil {
				return nil, ErrInvalidPayload
			}
			upd["due_date"] = due
		case "assigned_to", "team_id", "department_id":
			id, err := decodeString(val)
			if err != nil || (id != nil && uuid.Validate(*id) != nil) {
				return nil, ErrInvalidPayload
			}
			upd[key] = id
		case "rating":
			rating, err := decodeInt(val)
			if err != nil || (rating != nil && (*rating < 1 || *rating > 5)) {
				return nil, ErrInvalidPayload
			}
			upd["rating"] = rating
		case "review_comment":
			comment, err := decodeString(val)
			if err != nil || (comment != nil && len(*comment) > 2000) {
				return nil, ErrInvalidPayload
			}
			upd["review_comment"] = comment
		default:
			return nil, ErrInvalidPayload
		}
	}
	if len(upd) == 0 {
		return nil, ErrInvalidPayload
	}
	return upd, nil
}

func decodeString(val json.RawMessage) (*string, error) {
	var out *string
	if err := json.Unmarshal(val, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func decodeInt(val json.RawMessage) (*int, error) {
	var out *int
	if err := json.Unmarshal(val, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func decodeTime(val json.RawMessage) (*time.Time, error) {
	var out *time.Time
	if err := json.Unmarshal(val, &out); err != nil {
		return nil, err
	}
	return out, nil
}
