package db

import (
	"context"

	"gorm.io/gorm"

	"github.com/fritter-app/fritter/internal/models"
)

// Repository provides database access methods
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new repository
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// UserRepository provides user-related database operations
type UserRepository struct {
	*Repository
}

// NewUserRepository creates a new user repository
func NewUserRepository(repo *Repository) *UserRepository {
	return &UserRepository{Repository: repo}
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// GetByUsername retrieves a user by username
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	return translate(r.db.WithContext(ctx).Create(user).Error)
}

// Delete removes a user and everything hanging off the account: their
// freets, follow edges in both directions, circle memberships they own or
// belong to, their mutes, and other users' mutes that target the account.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx)

	if err := tx.Where("author_id = ?", id).Delete(&models.Freet{}).Error; err != nil {
		return translate(err)
	}
	if err := tx.Where("follower = ? OR following = ?", id, id).Delete(&models.Follow{}).Error; err != nil {
		return translate(err)
	}
	if err := tx.Where("owner_id = ? OR member_id = ?", id, id).Delete(&models.Circle{}).Error; err != nil {
		return translate(err)
	}
	if err := tx.Where("owner_id = ? OR account_id = ?", id, id).Delete(&models.Mute{}).Error; err != nil {
		return translate(err)
	}

	result := tx.Delete(&models.User{}, id)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// FreetRepository provides freet-related database operations
type FreetRepository struct {
	*Repository
}

// NewFreetRepository creates a new freet repository
func NewFreetRepository(repo *Repository) *FreetRepository {
	return &FreetRepository{Repository: repo}
}

// GetByID retrieves a freet by ID
func (r *FreetRepository) GetByID(ctx context.Context, id int64) (*models.Freet, error) {
	var freet models.Freet
	if err := r.db.WithContext(ctx).First(&freet, id).Error; err != nil {
		return nil, translate(err)
	}
	return &freet, nil
}

// Create creates a new freet
func (r *FreetRepository) Create(ctx context.Context, freet *models.Freet) error {
	return translate(r.db.WithContext(ctx).Create(freet).Error)
}

// ListByAuthor retrieves all freets by an author, newest first
func (r *FreetRepository) ListByAuthor(ctx context.Context, authorID int64) ([]models.Freet, error) {
	var freets []models.Freet
	if err := r.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("created_at DESC").
		Find(&freets).Error; err != nil {
		return nil, translate(err)
	}
	return freets, nil
}

// ListAll retrieves every freet, most recently modified first
func (r *FreetRepository) ListAll(ctx context.Context) ([]models.Freet, error) {
	var freets []models.Freet
	if err := r.db.WithContext(ctx).
		Order("modified_at DESC").
		Find(&freets).Error; err != nil {
		return nil, translate(err)
	}
	return freets, nil
}

// UpdateContent replaces a freet's content and bumps modified_at
func (r *FreetRepository) UpdateContent(ctx context.Context, freet *models.Freet) error {
	return translate(r.db.WithContext(ctx).
		Model(freet).
		Updates(map[string]interface{}{
			"content":     freet.Content,
			"modified_at": freet.ModifiedAt,
		}).Error)
}

// UpdateCircle sets or clears a freet's circle scope. An empty circlename
// clears it, returning the freet to the public stream.
func (r *FreetRepository) UpdateCircle(ctx context.Context, id int64, circlename string) error {
	value := interface{}(nil)
	if circlename != "" {
		value = circlename
	}
	return translate(r.db.WithContext(ctx).
		Model(&models.Freet{}).
		Where("id = ?", id).
		Update("circle_name", value).Error)
}

// Delete removes a freet
func (r *FreetRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Freet{}, id)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// FollowRepository provides follow-related database operations
type FollowRepository struct {
	*Repository
}

// NewFollowRepository creates a new follow repository
func NewFollowRepository(repo *Repository) *FollowRepository {
	return &FollowRepository{Repository: repo}
}

// Create creates a follow edge; a duplicate pair yields ErrDuplicate
func (r *FollowRepository) Create(ctx context.Context, follow *models.Follow) error {
	return translate(r.db.WithContext(ctx).Create(follow).Error)
}

// Get retrieves a follow edge by the ordered pair
func (r *FollowRepository) Get(ctx context.Context, followerID, followingID int64) (*models.Follow, error) {
	var follow models.Follow
	if err := r.db.WithContext(ctx).
		Where("follower = ? AND following = ?", followerID, followingID).
		First(&follow).Error; err != nil {
		return nil, translate(err)
	}
	return &follow, nil
}

// Delete removes a follow edge
func (r *FollowRepository) Delete(ctx context.Context, followerID, followingID int64) error {
	result := r.db.WithContext(ctx).
		Where("follower = ? AND following = ?", followerID, followingID).
		Delete(&models.Follow{})
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListFollowing retrieves all edges where the user is the follower, in
// insertion order
func (r *FollowRepository) ListFollowing(ctx context.Context, followerID int64) ([]models.Follow, error) {
	var follows []models.Follow
	if err := r.db.WithContext(ctx).
		Where("follower = ?", followerID).
		Order("created_at ASC").
		Find(&follows).Error; err != nil {
		return nil, translate(err)
	}
	return follows, nil
}

// ListFollowers retrieves all edges where the user is being followed
func (r *FollowRepository) ListFollowers(ctx context.Context, followingID int64) ([]models.Follow, error) {
	var follows []models.Follow
	if err := r.db.WithContext(ctx).
		Where("following = ?", followingID).
		Order("created_at ASC").
		Find(&follows).Error; err != nil {
		return nil, translate(err)
	}
	return follows, nil
}

// CircleRepository provides circle-membership database operations
type CircleRepository struct {
	*Repository
}

// NewCircleRepository creates a new circle repository
func NewCircleRepository(repo *Repository) *CircleRepository {
	return &CircleRepository{Repository: repo}
}

// Create adds a member to a circle; a duplicate triple yields ErrDuplicate
func (r *CircleRepository) Create(ctx context.Context, circle *models.Circle) error {
	return translate(r.db.WithContext(ctx).Create(circle).Error)
}

// IsMember reports whether the membership triple exists
func (r *CircleRepository) IsMember(ctx context.Context, circlename string, ownerID, userID int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Circle{}).
		Where("circle_name = ? AND owner_id = ? AND member_id = ?", circlename, ownerID, userID).
		Count(&count).Error; err != nil {
		return false, translate(err)
	}
	return count > 0, nil
}

// Exists reports whether the owner has a circle with the given name
func (r *CircleRepository) Exists(ctx context.Context, circlename string, ownerID int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Circle{}).
		Where("circle_name = ? AND owner_id = ?", circlename, ownerID).
		Count(&count).Error; err != nil {
		return false, translate(err)
	}
	return count > 0, nil
}

// ListByOwner retrieves all of an owner's memberships
func (r *CircleRepository) ListByOwner(ctx context.Context, ownerID int64) ([]models.Circle, error) {
	var circles []models.Circle
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("circle_name ASC, id ASC").
		Find(&circles).Error; err != nil {
		return nil, translate(err)
	}
	return circles, nil
}

// DeleteMembership removes one member from a circle
func (r *CircleRepository) DeleteMembership(ctx context.Context, circlename string, ownerID, memberID int64) error {
	result := r.db.WithContext(ctx).
		Where("circle_name = ? AND owner_id = ? AND member_id = ?", circlename, ownerID, memberID).
		Delete(&models.Circle{})
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteCircle removes every membership of one named circle
func (r *CircleRepository) DeleteCircle(ctx context.Context, circlename string, ownerID int64) error {
	return translate(r.db.WithContext(ctx).
		Where("circle_name = ? AND owner_id = ?", circlename, ownerID).
		Delete(&models.Circle{}).Error)
}

// MuteRepository provides mute-related database operations
type MuteRepository struct {
	*Repository
}

// NewMuteRepository creates a new mute repository
func NewMuteRepository(repo *Repository) *MuteRepository {
	return &MuteRepository{Repository: repo}
}

// Create creates a new mute
func (r *MuteRepository) Create(ctx context.Context, mute *models.Mute) error {
	return translate(r.db.WithContext(ctx).Create(mute).Error)
}

// GetByID retrieves a mute by ID
func (r *MuteRepository) GetByID(ctx context.Context, id int64) (*models.Mute, error) {
	var mute models.Mute
	if err := r.db.WithContext(ctx).First(&mute, id).Error; err != nil {
		return nil, translate(err)
	}
	return &mute, nil
}

// ListByOwner retrieves all of an owner's mutes in insertion order
func (r *MuteRepository) ListByOwner(ctx context.Context, ownerID int64) ([]models.Mute, error) {
	var mutes []models.Mute
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("id ASC").
		Find(&mutes).Error; err != nil {
		return nil, translate(err)
	}
	return mutes, nil
}

// Delete removes a mute permanently
func (r *MuteRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Mute{}, id)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
