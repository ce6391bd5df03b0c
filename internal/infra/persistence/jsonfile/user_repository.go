package jsonfile

import (
	"context"
	"path/filepath"
	"strings"

	"clinic/config"
	"clinic/internal/domain/entity"
	"clinic/internal/domain/repository"
	"clinic/internal/infra/jsonstore"
	"clinic/internal/infra/persistence/model"
)

// userRepository implements repository.UserRepository over userData.json.
type userRepository struct {
	store *jsonstore.Collection[model.UserRecord]
}

// NewUserRepository is the constructor for userRepository.
// It returns the implementation as a repository.UserRepository interface,
// adhering to dependency inversion.
func NewUserRepository(cfg *config.Config) repository.UserRepository {
	return &userRepository{
		store: jsonstore.NewCollection[model.UserRecord](
			filepath.Join(cfg.Storage.DataPath, userDataFile),
		),
	}
}

func (repo *userRepository) ListAll(ctx context.Context) ([]entity.User, error) {
	records, err := repo.store.ReadAll()
	if err != nil {
		return nil, err
	}

	users := make([]entity.User, 0, len(records))
	for _, record := range records {
		users = append(users, toUserEntity(record))
	}

	return users, nil
}

func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	return repo.findFirst(func(record model.UserRecord) bool {
		return strings.EqualFold(record.UserID, id)
	})
}

func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.findFirst(func(record model.UserRecord) bool {
		return strings.EqualFold(record.Email, email)
	})
}

func (repo *userRepository) FindByName(ctx context.Context, name string) (*entity.User, error) {
	return repo.findFirst(func(record model.UserRecord) bool {
		return record.Name == name
	})
}

// SaveOrUpdate replaces the record with a matching id in place, keeping the
// original file order. The existence check runs once, after the full scan.
func (repo *userRepository) SaveOrUpdate(ctx context.Context, user *entity.User) error {
	record := fromUserEntity(user)

	return repo.store.Update(func(records []model.UserRecord) ([]model.UserRecord, error) {
		replaced := false
		for i := range records {
			if strings.EqualFold(records[i].UserID, record.UserID) {
				records[i] = record
				replaced = true
			}
		}
		if !replaced {
			records = append(records, record)
		}

		return records, nil
	})
}

// Delete removes the record with a matching id. Deleting an unknown id is a
// no-op and leaves the other records untouched.
func (repo *userRepository) Delete(ctx context.Context, id string) error {
	return repo.store.Update(func(records []model.UserRecord) ([]model.UserRecord, error) {
		kept := records[:0]
		for _, record := range records {
			if !strings.EqualFold(record.UserID, id) {
				kept = append(kept, record)
			}
		}

		return kept, nil
	})
}

func (repo *userRepository) findFirst(match func(model.UserRecord) bool) (*entity.User, error) {
	records, err := repo.store.ReadAll()
	if err != nil {
		return nil, err
	}

	for _, record := range records {
		if match(record) {
			user := toUserEntity(record)

			return &user, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func toUserEntity(record model.UserRecord) entity.User {
	return entity.User{
		ID:           record.UserID,
		Role:         entity.Role(record.Role),
		Name:         record.Name,
		Email:        record.Email,
		Phone:        record.Phone,
		Address:      record.Address,
		PasswordHash: record.PasswordHash,
	}
}

func fromUserEntity(user *entity.User) model.UserRecord {
	return model.UserRecord{
		UserID:       user.ID,
		Role:         user.Role.String(),
		Name:         user.Name,
		Email:        user.Email,
		Phone:        user.Phone,
		Address:      user.Address,
		PasswordHash: user.PasswordHash,
	}
}
