package social

import (
	"errors"

	"circleup/backend/internal/models"

	"gorm.io/gorm"
)

// Kind tags a content entity type that the core can reference generically.
type Kind string

const (
	KindPost    Kind = "post"
	KindMovie   Kind = "movie"
	KindComment Kind = "comment"
)

// ContentRef is a polymorphic reference to a content entity.
type ContentRef struct {
	Kind Kind
	ID   uint
}

// ContentInfo carries the fields of a resolved entity that the guard and
// the comment thread care about. Fields whose capability the kind does not
// declare are left at their zero value and never consulted.
type ContentInfo struct {
	OwnerID         uint
	Visibility      models.Visibility
	CommentsEnabled bool
	AuthorID        uint // comment kind only
}

// Descriptor describes a content kind's capability set. Absence of a
// capability means the corresponding rule is skipped, not denied.
type Descriptor struct {
	Kind              Kind
	Table             string
	HasOwner          bool
	HasVisibility     bool
	HasCommentsToggle bool
	AcceptsComments   bool
	Likeable          bool
	counters          map[string]bool
	load              func(db *gorm.DB, id uint) (*ContentInfo, error)
}

// HasCounter reports whether the kind declares the named denormalized counter.
func (d *Descriptor) HasCounter(name string) bool { return d.counters[name] }

// The registry is fixed at compile time; "does this entity have this
// attribute" is answered here, never by storage metadata at request time.
var kinds = map[Kind]*Descriptor{
	KindPost: {
		Kind:              KindPost,
		Table:             "posts",
		HasOwner:          true,
		HasVisibility:     true,
		HasCommentsToggle: true,
		AcceptsComments:   true,
		Likeable:          true,
		counters:          map[string]bool{CounterComments: true, CounterLikes: true},
		load: func(db *gorm.DB, id uint) (*ContentInfo, error) {
			var p models.Post
			if err := db.Select("id", "owner_id", "visibility", "comments_enabled").First(&p, id).Error; err != nil {
				return nil, err
			}
			return &ContentInfo{OwnerID: p.OwnerID, Visibility: p.Visibility, CommentsEnabled: p.CommentsEnabled}, nil
		},
	},
	KindMovie: {
		Kind:            KindMovie,
		Table:           "movies",
		AcceptsComments: true,
		Likeable:        true,
		counters:        map[string]bool{CounterComments: true},
		load: func(db *gorm.DB, id uint) (*ContentInfo, error) {
			var m models.Movie
			if err := db.Select("id").First(&m, id).Error; err != nil {
				return nil, err
			}
			return &ContentInfo{}, nil
		},
	},
	KindComment: {
		Kind:     KindComment,
		Table:    "comments",
		Likeable: true,
		counters: map[string]bool{CounterLikes: true, CounterReplies: true},
		load: func(db *gorm.DB, id uint) (*ContentInfo, error) {
			var c models.Comment
			if err := db.Select("id", "user_id").First(&c, id).Error; err != nil {
				return nil, err
			}
			return &ContentInfo{AuthorID: c.UserID}, nil
		},
	},
}

// KindOf maps a request-supplied type tag to a registered kind.
func KindOf(s string) (Kind, bool) {
	k := Kind(s)
	_, ok := kinds[k]
	return k, ok
}

// Lookup returns the descriptor for a kind.
func Lookup(k Kind) (*Descriptor, bool) {
	d, ok := kinds[k]
	return d, ok
}

// Resolve loads the referenced entity's guard-relevant fields. A missing
// row or an unregistered kind is NotFound; anything else is a persistence
// failure.
func Resolve(db *gorm.DB, ref ContentRef) (*Descriptor, *ContentInfo, error) {
	d, ok := kinds[ref.Kind]
	if !ok {
		return nil, nil, notFound("content")
	}
	info, err := d.load(db, ref.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, notFound(string(ref.Kind))
		}
		return nil, nil, persistence(err)
	}
	return d, info, nil
}
