package taskhandler

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/old-buffalo/task-management/db"
	filestorage "github.com/old-buffalo/task-management/lib/file-storage"
	notificationstore "github.com/old-buffalo/task-management/lib/notification/store"
	taskattachmentstore "github.com/old-buffalo/task-management/lib/task/attachment-store"
	taskcommentstore "github.com/old-buffalo/task-management/lib/task/comment-store"
	taskstore "github.com/old-buffalo/task-management/lib/task/store"
	"github.com/old-buffalo/task-management/lib/utils/helpers"
	"github.com/old-buffalo/task-management/models"
	taskapimodels "github.com/old-buffalo/task-management/models/api/task"
	dbmodels "github.com/old-buffalo/task-management/models/db"
)

// MaxAttachmentSize caps a single upload, enforced before any storage write.
const MaxAttachmentSize = 10 * 1024 * 1024

var (
	ErrTaskNotFound = errors.New("Not found")
	ErrMissingFile  = errors.New("Missing file")
	ErrEmptyFile    = errors.New("Empty file")
	ErrFileTooLarge = errors.New("File too large (max 10MB)")
)

type Provider interface {
	List(userID string, filter taskapimodels.Filter) (list []taskapimodels.Task, err error)
	Create(userID string, payload taskapimodels.CreateTaskRequest) (taskapimodels.Task, error)
	Get(userID, taskID string) (taskapimodels.Task, error)
	Update(userID, taskID string, updMap map[string]interface{}) (taskapimodels.Task, error)
	Delete(userID, taskID string) error
	ListComments(userID, taskID string) (list []taskapimodels.Comment, err error)
	AddComment(userID, taskID string, payload taskapimodels.CreateCommentRequest) (taskapimodels.Comment, error)
	ListAttachments(ctx context.Context, userID, taskID string) (list []taskapimodels.Attachment, err error)
	UploadAttachment(ctx context.Context, userID, taskID, fileName, contentType string, size int64, fileReader io.Reader) (taskapimodels.Attachment, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		taskStore:         taskstore.NewInstance(db.DB),
		commentStore:      taskcommentstore.NewInstance(db.DB),
		attachmentStore:   taskattachmentstore.NewInstance(db.DB),
		notificationStore: notificationstore.NewInstance(db.DB),
		storage:           filestorage.Instance,
	}
}

func NewInstance(DB *gorm.DB, storage filestorage.Provider) Provider {
	return impl{
		taskStore:         taskstore.NewInstance(DB),
		commentStore:      taskcommentstore.NewInstance(DB),
		attachmentStore:   taskattachmentstore.NewInstance(DB),
		notificationStore: notificationstore.NewInstance(DB),
		storage:           storage,
	}
}

type impl struct {
	taskStore         taskstore.Provider
	commentStore      taskcommentstore.Provider
	attachmentStore   taskattachmentstore.Provider
	notificationStore notificationstore.Provider
	storage           filestorage.Provider
}

// List composes the conjunctive filters; the presence kinds are resolved to
// task-id sets first and intersected, and an empty intersection
// short-circuits to an empty result without the main query.
func (i impl) List(userID string, filter taskapimodels.Filter) (list []taskapimodels.Task, err error) {
	var idFilter []string
	presenceFiltered := false
	for _, kind := range filter.HasKinds() {
		var set []string
		switch kind {
		case "comments":
			set, err = i.commentStore.TaskIDs()
		case "attachments":
			set, err = i.attachmentStore.TaskIDs()
		default:
			continue
		}
		if err != nil {
			return nil, err
		}
		if presenceFiltered {
			idFilter = lo.Intersect(idFilter, set)
		} else {
			idFilter = set
			presenceFiltered = true
		}
	}
	if presenceFiltered {
		if len(idFilter) == 0 {
			return []taskapimodels.Task{}, nil
		}
	} else {
		idFilter = nil
	}

	recs, err := i.taskStore.List(userID, filter, idFilter)
	if err != nil {
		return nil, err
	}
	list = make([]taskapimodels.Task, 0, len(recs))
	for _, rec := range recs {
		list = append(list, rec.ToModel())
	}
	return list, nil
}

func (i impl) Create(userID string, payload taskapimodels.CreateTaskRequest) (task taskapimodels.Task, err error) {
	priority := payload.Priority
	if priority == "" {
		priority = models.TaskPriorityMedium
	}
	assignedTo := userID
	if payload.AssignedTo != nil {
		assignedTo = *payload.AssignedTo
	}
	rec := dbmodels.Task{
		Title:        payload.Title,
		Description:  payload.Description,
		Status:       models.TaskStatusPending,
		Priority:     priority,
		DueDate:      payload.DueDate,
		DepartmentID: payload.DepartmentID,
		TeamID:       payload.TeamID,
		WorkspaceID:  payload.WorkspaceID,
		CreatedBy:    userID,
		AssignedTo:   assignedTo,
	}
	taskID, err := i.taskStore.Create(rec)
	if err != nil {
		return task, err
	}
	created, err := i.taskStore.GetByID(userID, taskID)
	if err != nil {
		return task, err
	}
	if created == nil {
		return task, errors.New("task creation failed")
	}
	if assignedTo != userID {
		i.notifyAssigned(assignedTo, created.Title)
	}
	return created.ToModel(), nil
}

func (i impl) Get(userID, taskID string) (task taskapimodels.Task, err error) {
	rec, err := i.taskStore.GetByID(userID, taskID)
	if err != nil {
		return task, err
	}
	if rec == nil {
		return task, ErrTaskNotFound
	}
	return rec.ToModel(), nil
}

func (i impl) Update(userID, taskID string, updMap map[string]interface{}) (task taskapimodels.Task, err error) {
	prior, err := i.taskStore.GetByID(userID, taskID)
	if err != nil {
		return task, err
	}
	if prior == nil {
		return task, ErrTaskNotFound
	}
	found, err := i.taskStore.Update(userID, taskID, updMap)
	if err != nil {
		return task, err
	}
	if !found {
		return task, ErrTaskNotFound
	}
	if assignee, ok := updMap["assigned_to"].(*string); ok && assignee != nil &&
		*assignee != prior.AssignedTo && *assignee != userID {
		i.notifyAssigned(*assignee, prior.Title)
	}
	// The updated row may have left the caller's visibility (reassignment by
	// the assignee); treat that the same as deleted.
	rec, err := i.taskStore.GetByID(userID, taskID)
	if err != nil {
		return task, err
	}
	if rec == nil {
		return task, ErrTaskNotFound
	}
	return rec.ToModel(), nil
}

func (i impl) Delete(userID, taskID string) error {
	found, err := i.taskStore.Delete(userID, taskID)
	if err != nil {
		return err
	}
	if !found {
		return ErrTaskNotFound
	}
	return nil
}

// assertAccess confirms the task exists and is visible to the caller; the
// same predicate guards comments and attachments.
func (i impl) assertAccess(userID, taskID string) (*dbmodels.Task, error) {
	rec, err := i.taskStore.GetByID(userID, taskID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, ErrTaskNotFound
	}
	return rec, nil
}

func (i impl) ListComments(userID, taskID string) (list []taskapimodels.Comment, err error) {
	if _, err = i.assertAccess(userID, taskID); err != nil {
		return nil, err
	}
	recs, err := i.commentStore.ListByTask(taskID)
	if err != nil {
		return nil, err
	}
	list = make([]taskapimodels.Comment, 0, len(recs))
	for _, rec := range recs {
		list = append(list, rec.ToModel())
	}
	return list, nil
}

func (i impl) AddComment(userID, taskID string, payload taskapimodels.CreateCommentRequest) (comment taskapimodels.Comment, err error) {
	task, err := i.assertAccess(userID, taskID)
	if err != nil {
		return comment, err
	}
	if payload.AttachmentID != nil {
		attachment, err := i.attachmentStore.GetByID(*payload.AttachmentID)
		if err != nil {
			return comment, err
		}
		if attachment == nil || attachment.TaskID != taskID {
			return comment, taskapimodels.ErrInvalidPayload
		}
	}
	commentID, err := i.commentStore.Create(dbmodels.TaskComment{
		TaskID:       taskID,
		AuthorID:     userID,
		Content:      payload.Content,
		AttachmentID: payload.AttachmentID,
	})
	if err != nil {
		return comment, err
	}
	rec, err := i.commentStore.GetByID(commentID)
	if err != nil {
		return comment, err
	}
	if rec == nil {
		return comment, errors.New("comment creation failed")
	}
	i.notifyCommented(task, userID)
	return rec.ToModel(), nil
}

func (i impl) ListAttachments(ctx context.Context, userID, taskID string) (list []taskapimodels.Attachment, err error) {
	if _, err = i.assertAccess(userID, taskID); err != nil {
		return nil, err
	}
	recs, err := i.attachmentStore.ListByTask(taskID)
	if err != nil {
		return nil, err
	}
	list = make([]taskapimodels.Attachment, 0, len(recs))
	for _, rec := range recs {
		view := rec.ToModel()
		view.URL = i.signURL(ctx, &rec)
		list = append(list, view)
	}
	return list, nil
}

func (i impl) UploadAttachment(ctx context.Context, userID, taskID, fileName, contentType string, size int64, fileReader io.Reader) (attachment taskapimodels.Attachment, err error) {
	if _, err = i.assertAccess(userID, taskID); err != nil {
		return attachment, err
	}
	if size <= 0 {
		return attachment, ErrEmptyFile
	}
	if size > MaxAttachmentSize {
		return attachment, ErrFileTooLarge
	}

	safeName := helpers.SafeFileName(fileName)
	objectKey := "tasks/" + taskID + "/" + uuid.NewString()
	if ext := helpers.FileExt(safeName); ext != "" {
		objectKey += "." + ext
	}

	if err = i.storage.Upload(ctx, objectKey, fileReader, size, contentType); err != nil {
		return attachment, err
	}

	// The object write and the row insert are independent; a failed insert
	// leaves an orphan object behind (accepted, not compensated).
	attachmentID, err := i.attachmentStore.Create(dbmodels.TaskAttachment{
		TaskID:      taskID,
		UploaderID:  userID,
		StoragePath: objectKey,
		FileName:    safeName,
		MimeType:    contentType,
		SizeBytes:   size,
	})
	if err != nil {
		return attachment, err
	}
	rec, err := i.attachmentStore.GetByID(attachmentID)
	if err != nil {
		return attachment, err
	}
	if rec == nil {
		return attachment, errors.New("attachment insert failed")
	}
	view := rec.ToModel()
	view.URL = i.signURL(ctx, rec)
	return view, nil
}

// signURL mints a short-lived link; a sign failure degrades to a null url.
func (i impl) signURL(ctx context.Context, rec *dbmodels.TaskAttachment) *string {
	if i.storage == nil {
		return nil
	}
	signed, err := i.storage.SignedURL(ctx, rec.StoragePath, rec.FileName, filestorage.SignedURLTTL)
	if err != nil {
		log.WithError(err).WithField("attachment_id", rec.ID).Warn("signed url mint failed")
		return nil
	}
	return &signed
}

func (i impl) notifyAssigned(userID, taskTitle string) {
	body := "Task: " + taskTitle
	_, err := i.notificationStore.Create(dbmodels.Notification{
		UserID: userID,
		Title:  "Bạn được giao công việc mới",
		Body:   &body,
	})
	if err != nil {
		log.WithError(err).Warn("assignment notification failed")
	}
}

// notifyCommented fans out to the task's creator and assignee, skipping the
// comment author.
func (i impl) notifyCommented(task *dbmodels.Task, authorID string) {
	body := "Task: " + task.Title
	for _, userID := range lo.Uniq([]string{task.CreatedBy, task.AssignedTo}) {
		if userID == authorID {
			continue
		}
		_, err := i.notificationStore.Create(dbmodels.Notification{
			UserID: userID,
			Title:  "Bình luận mới",
			Body:   &body,
		})
		if err != nil {
			log.WithError(err).Warn("comment notification failed")
		}
	}
}
