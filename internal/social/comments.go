package social

import (
	"errors"
	"time"

	"circleup/backend/internal/models"

	"gorm.io/gorm"
)

// ThreadConfig makes the two behaviors the comment thread could
// reasonably go either way on explicit policy instead of accidents.
type ThreadConfig struct {
	// CascadeReplies deletes a comment's reply subtree along with it.
	// When false, replies are orphaned: they keep referencing the
	// deleted parent and stay readable through the commentable.
	CascadeReplies bool

	// MaxDepth caps comment nesting. Zero means unbounded; a top-level
	// comment is depth 1.
	MaxDepth int
}

// CommentItem is a comment annotated with the requesting actor's own
// like-state. Nothing beyond the boolean and the actor's own like id ever
// leaves the thread engine.
type CommentItem struct {
	models.Comment
	Liked  bool
	LikeID *uint
}

// CommentDetail is a comment with one page of its direct replies.
type CommentDetail struct {
	Comment    CommentItem
	Replies    []CommentItem
	ReplyCount int64
}

// ListOptions filters, sorts and paginates a comment listing.
type ListOptions struct {
	AuthorID *uint
	Contains string
	Since    *time.Time
	Until    *time.Time
	MinLikes *int64
	MaxLikes *int64
	SortBy   string // "created_at" (default) or "likes_count"
	Desc     bool
	Page     int
	Limit    int
}

func (o ListOptions) apply(q *gorm.DB) *gorm.DB {
	if o.AuthorID != nil {
		q = q.Where("user_id = ?", *o.AuthorID)
	}
	if o.Contains != "" {
		q = q.Where("content LIKE ?", "%"+o.Contains+"%")
	}
	if o.Since != nil {
		q = q.Where("created_at >= ?", *o.Since)
	}
	if o.Until != nil {
		q = q.Where("created_at <= ?", *o.Until)
	}
	if o.MinLikes != nil {
		q = q.Where("likes_count >= ?", *o.MinLikes)
	}
	if o.MaxLikes != nil {
		q = q.Where("likes_count <= ?", *o.MaxLikes)
	}
	return q
}

func (o ListOptions) order() string {
	column := "created_at"
	if o.SortBy == "likes_count" {
		column = "likes_count"
	}
	if o.Desc {
		return column + " DESC"
	}
	return column + " ASC"
}

func (o ListOptions) page() (offset, limit int) {
	page := o.Page
	if page < 1 {
		page = 1
	}
	limit = o.Limit
	if limit < 1 {
		limit = 20
	}
	return (page - 1) * limit, limit
}

// CommentThread creates, reads, updates and deletes comments and replies,
// coordinating the visibility guard, the counter ledger and the
// notification sink.
type CommentThread struct {
	db     *gorm.DB
	guard  *VisibilityGuard
	ledger CounterLedger
	sink   NotificationSink
	cfg    ThreadConfig
}

func NewCommentThread(db *gorm.DB, sink NotificationSink, cfg ThreadConfig) *CommentThread {
	return &CommentThread{db: db, guard: NewVisibilityGuard(db), sink: sink, cfg: cfg}
}

// Create adds a comment (parentID nil) or a reply to the referenced
// commentable. All rule checks, the insert and the counter updates run in
// one transaction; notification events fire only after it commits.
func (t *CommentThread) Create(actorID uint, ref ContentRef, content string, parentID *uint) (*models.Comment, error) {
	d, info, err := Resolve(t.db, ref)
	if err != nil {
		return nil, err
	}
	if !d.AcceptsComments {
		return nil, notFound("commentable content")
	}
	if d.HasCommentsToggle && !info.CommentsEnabled {
		return nil, ErrCommentsDisabled
	}
	if err := t.guard.check(t.db, actorID, d, info); err != nil {
		return nil, err
	}

	comment := models.Comment{
		CommentableType: string(ref.Kind),
		CommentableID:   ref.ID,
		UserID:          actorID,
		Content:         content,
		ParentID:        parentID,
	}

	var events []Event
	err = t.db.Transaction(func(tx *gorm.DB) error {
		if parentID == nil {
			var count int64
			err := tx.Model(&models.Comment{}).
				Where("user_id = ? AND commentable_type = ? AND commentable_id = ? AND parent_id IS NULL",
					actorID, ref.Kind, ref.ID).
				Count(&count).Error
			if err != nil {
				return persistence(err)
			}
			if count > 0 {
				return ErrDuplicateTopLevel
			}
		} else {
			parent, err := t.loadParent(tx, *parentID, ref)
			if err != nil {
				return err
			}
			if parent.UserID == actorID {
				return ErrSelfReply
			}
			if t.cfg.MaxDepth > 0 {
				depth, err := t.depthOf(tx, parent)
				if err != nil {
					return err
				}
				if depth+1 > t.cfg.MaxDepth {
					return ErrMaxCommentDepth
				}
			}
		}

		if err := tx.Create(&comment).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				// Lost the race for the one top-level slot.
				return ErrDuplicateTopLevel
			}
			return persistence(err)
		}

		if err := t.ledger.Increment(tx, ref, CounterComments); err != nil {
			return err
		}
		if parentID != nil {
			if err := t.ledger.Increment(tx, ContentRef{Kind: KindComment, ID: *parentID}, CounterReplies); err != nil {
				return err
			}
		}

		events = t.creationEvents(tx, &comment, d, info)
		return nil
	})
	if err != nil {
		return nil, err
	}

	dispatchAll(t.sink, events)
	return &comment, nil
}

// Get returns a comment with one page of its direct replies, all annotated
// with the actor's like-state. Visibility is evaluated against the
// comment's commentable, not the comment itself.
func (t *CommentThread) Get(actorID, id uint, page, limit int) (*CommentDetail, error) {
	comment, err := t.load(id)
	if err != nil {
		return nil, err
	}
	if err := t.guard.CanView(actorID, commentableRef(comment)); err != nil {
		return nil, err
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	var replyCount int64
	if err := t.db.Model(&models.Comment{}).Where("parent_id = ?", id).Count(&replyCount).Error; err != nil {
		return nil, persistence(err)
	}

	var replies []models.Comment
	err = t.db.Where("parent_id = ?", id).
		Order("created_at ASC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&replies).Error
	if err != nil {
		return nil, persistence(err)
	}

	items, err := t.annotate(actorID, append([]models.Comment{*comment}, replies...))
	if err != nil {
		return nil, err
	}
	return &CommentDetail{Comment: items[0], Replies: items[1:], ReplyCount: replyCount}, nil
}

// Update changes a comment's content. Only the author may update, and
// nothing but the content is touched.
func (t *CommentThread) Update(actorID, id uint, content string) (*models.Comment, error) {
	comment, err := t.load(id)
	if err != nil {
		return nil, err
	}
	if comment.UserID != actorID {
		return nil, ErrForbidden
	}
	if err := t.db.Model(comment).Update("content", content).Error; err != nil {
		return nil, persistence(err)
	}
	return comment, nil
}

// Delete removes a comment and settles the counters it contributed to. The
// commentable may already be gone, in which case its counter is skipped.
// Deleting an already-deleted comment reports NotFound, never a second
// decrement.
func (t *CommentThread) Delete(actorID, id uint) error {
	comment, err := t.load(id)
	if err != nil {
		return err
	}
	if comment.UserID != actorID {
		return ErrForbidden
	}

	ref := commentableRef(comment)
	return t.db.Transaction(func(tx *gorm.DB) error {
		removed := int64(1)
		if t.cfg.CascadeReplies {
			n, err := t.deleteReplies(tx, comment.ID)
			if err != nil {
				return err
			}
			removed += n
		}

		if err := tx.Delete(comment).Error; err != nil {
			return persistence(err)
		}

		if comment.ParentID != nil {
			err := t.ledger.Decrement(tx, ContentRef{Kind: KindComment, ID: *comment.ParentID}, CounterReplies)
			if err != nil {
				return err
			}
		}

		// The commentable may have been deleted out from under its
		// comments; resolve before touching its counter.
		if _, _, err := Resolve(tx, ref); err != nil {
			if errors.Is(err, ErrNotFound) {
				return nil
			}
			return err
		}
		return t.ledger.subtract(tx, ref, CounterComments, removed)
	})
}

// ListTopLevel returns one page of a commentable's top-level comments.
func (t *CommentThread) ListTopLevel(actorID uint, ref ContentRef, opts ListOptions) ([]CommentItem, int64, error) {
	if err := t.guard.CanView(actorID, ref); err != nil {
		return nil, 0, err
	}
	base := t.db.Model(&models.Comment{}).
		Where("commentable_type = ? AND commentable_id = ? AND parent_id IS NULL", ref.Kind, ref.ID)
	return t.list(actorID, base, opts)
}

// ListReplies returns one page of a comment's direct replies.
func (t *CommentThread) ListReplies(actorID, parentID uint, opts ListOptions) ([]CommentItem, int64, error) {
	parent, err := t.load(parentID)
	if err != nil {
		return nil, 0, err
	}
	if err := t.guard.CanView(actorID, commentableRef(parent)); err != nil {
		return nil, 0, err
	}
	base := t.db.Model(&models.Comment{}).Where("parent_id = ?", parentID)
	return t.list(actorID, base, opts)
}

func (t *CommentThread) list(actorID uint, base *gorm.DB, opts ListOptions) ([]CommentItem, int64, error) {
	query := opts.apply(base)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, persistence(err)
	}

	offset, limit := opts.page()
	var comments []models.Comment
	if err := query.Order(opts.order()).Offset(offset).Limit(limit).Find(&comments).Error; err != nil {
		return nil, 0, persistence(err)
	}

	items, err := t.annotate(actorID, comments)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// annotate attaches the actor's like-state to each comment. Only the
// boolean and the actor's own like id are exposed, never the likes
// relation itself.
func (t *CommentThread) annotate(actorID uint, comments []models.Comment) ([]CommentItem, error) {
	items := make([]CommentItem, len(comments))
	if len(comments) == 0 {
		return items, nil
	}

	ids := make([]uint, len(comments))
	for i, c := range comments {
		ids[i] = c.ID
	}

	var likes []models.Like
	err := t.db.
		Where("user_id = ? AND likeable_type = ? AND likeable_id IN ?", actorID, KindComment, ids).
		Find(&likes).Error
	if err != nil {
		return nil, persistence(err)
	}

	liked := make(map[uint]uint, len(likes))
	for _, l := range likes {
		liked[l.LikeableID] = l.ID
	}

	for i, c := range comments {
		items[i] = CommentItem{Comment: c}
		if likeID, ok := liked[c.ID]; ok {
			id := likeID
			items[i].Liked = true
			items[i].LikeID = &id
		}
	}
	return items, nil
}

func (t *CommentThread) creationEvents(tx *gorm.DB, comment *models.Comment, d *Descriptor, info *ContentInfo) []Event {
	if t.sink == nil {
		return nil
	}

	if comment.ParentID == nil {
		if !d.HasOwner || info.OwnerID == comment.UserID {
			return nil
		}
		if !t.sink.IsEnabled(info.OwnerID, EventPostCommented) {
			return nil
		}
		e := newEvent(EventPostCommented, info.OwnerID, comment.UserID)
		e.Subject = commentableRef(comment)
		e.CommentID = &comment.ID
		return []Event{e}
	}

	var parent models.Comment
	if err := tx.Select("id", "user_id").First(&parent, *comment.ParentID).Error; err != nil {
		return nil
	}
	if parent.UserID == comment.UserID || !t.sink.IsEnabled(parent.UserID, EventCommentReplied) {
		return nil
	}
	e := newEvent(EventCommentReplied, parent.UserID, comment.UserID)
	e.Subject = commentableRef(comment)
	e.CommentID = &comment.ID
	return []Event{e}
}

// deleteReplies removes the whole reply subtree below a comment and
// returns how many rows went with it.
func (t *CommentThread) deleteReplies(tx *gorm.DB, parentID uint) (int64, error) {
	frontier := []uint{parentID}
	var removed int64
	for len(frontier) > 0 {
		var ids []uint
		err := tx.Model(&models.Comment{}).
			Where("parent_id IN ?", frontier).
			Pluck("id", &ids).Error
		if err != nil {
			return 0, persistence(err)
		}
		if len(ids) == 0 {
			break
		}
		result := tx.Where("id IN ?", ids).Delete(&models.Comment{})
		if result.Error != nil {
			return 0, persistence(result.Error)
		}
		removed += result.RowsAffected
		frontier = ids
	}
	return removed, nil
}

func (t *CommentThread) depthOf(tx *gorm.DB, comment *models.Comment) (int, error) {
	depth := 1
	current := comment
	for current.ParentID != nil {
		var parent models.Comment
		if err := tx.Select("id", "parent_id").First(&parent, *current.ParentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// Orphaned chain; the deleted ancestors still count
				// toward nothing we can measure, stop here.
				break
			}
			return 0, persistence(err)
		}
		depth++
		current = &parent
	}
	return depth, nil
}

func (t *CommentThread) loadParent(tx *gorm.DB, parentID uint, ref ContentRef) (*models.Comment, error) {
	var parent models.Comment
	if err := tx.First(&parent, parentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("parent comment")
		}
		return nil, persistence(err)
	}
	if parent.CommentableType != string(ref.Kind) || parent.CommentableID != ref.ID {
		return nil, notFound("parent comment")
	}
	return &parent, nil
}

func (t *CommentThread) load(id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := t.db.First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("comment")
		}
		return nil, persistence(err)
	}
	return &comment, nil
}

func commentableRef(c *models.Comment) ContentRef {
	return ContentRef{Kind: Kind(c.CommentableType), ID: c.CommentableID}
}
