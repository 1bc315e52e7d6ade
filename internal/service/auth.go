package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/RafeefAlsuhaibani/takaful-test-backend/internal/model"
	"github.com/RafeefAlsuhaibani/takaful-test-backend/internal/validate"
	jwtpkg "github.com/RafeefAlsuhaibani/takaful-test-backend/pkg/jwt"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const blacklistKeyPrefix = "takaful:token:blacklist:"

type AuthService struct {
	db         *gorm.DB
	rdb        *redis.Client
	jwtSecret  string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewAuthService(db *gorm.DB, rdb *redis.Client, jwtSecret string, accessExpireHours, refreshExpireHours int) *AuthService {
	return &AuthService{
		db:         db,
		rdb:        rdb,
		jwtSecret:  jwtSecret,
		accessTTL:  time.Duration(accessExpireHours) * time.Hour,
		refreshTTL: time.Duration(refreshExpireHours) * time.Hour,
	}
}

// RegisterInput carries the combined user + volunteer profile signup payload.
type RegisterInput struct {
	FullName       string
	Email          string
	Phone          string
	Password       string
	NationalID     string
	Gender         string
	Age            uint
	Region         string
	City           string
	EducationLevel string
	AvailableDays  []string
	Skills         []string
	Interests      []string
}

// Register creates the account and its volunteer profile in one transaction.
// Phone is normalized to +9665XXXXXXXX before the strict format check.
func (s *AuthService) Register(in RegisterInput) (*model.User, error) {
	phone := validate.NormalizeSaudiPhone(in.Phone)
	if !validate.ValidSaudiPhone(phone) {
		return nil, fmt.Errorf("40001:invalid Saudi phone number")
	}
	nationalID := strings.TrimSpace(in.NationalID)
	if !validate.ValidNationalID(nationalID) {
		return nil, fmt.Errorf("40001:national id must be exactly 10 digits")
	}
	if in.Gender != model.GenderMale && in.Gender != model.GenderFemale {
		return nil, fmt.Errorf("40001:invalid gender")
	}
	if in.Age < 14 || in.Age > 100 {
		return nil, fmt.Errorf("40001:age must be between 14 and 100")
	}

	var count int64
	s.db.Model(&model.User{}).Where("email = ?", in.Email).Count(&count)
	if count > 0 {
		return nil, fmt.Errorf("40005:email already registered")
	}
	s.db.Model(&model.VolunteerProfile{}).Where("national_id = ?", nationalID).Count(&count)
	if count > 0 {
		return nil, fmt.Errorf("40005:national id already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         model.RoleVolunteer,
		Status:       1,
	}
	if first, rest, ok := strings.Cut(in.FullName, " "); ok {
		user.FirstName = first
		user.LastName = rest
	} else {
		user.FirstName = in.FullName
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}

		profile := &model.VolunteerProfile{
			UserID:         user.ID,
			FullName:       in.FullName,
			NationalID:     nationalID,
			Gender:         in.Gender,
			AgeYears:       in.Age,
			Phone:          phone,
			Region:         in.Region,
			City:           in.City,
			EducationLevel: in.EducationLevel,
			AvailableDays:  in.AvailableDays,
		}
		if err := tx.Create(profile).Error; err != nil {
			return err
		}

		// Tags are created on demand if missing.
		for _, name := range in.Skills {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			var skill model.Skill
			if err := tx.Where("name = ?", name).FirstOrCreate(&skill, model.Skill{Name: name}).Error; err != nil {
				return err
			}
			if err := tx.Model(profile).Association("Skills").Append(&skill); err != nil {
				return err
			}
		}
		for _, name := range in.Interests {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			var interest model.Interest
			if err := tx.Where("name = ?", name).FirstOrCreate(&interest, model.Interest{Name: name}).Error; err != nil {
				return err
			}
			if err := tx.Model(profile).Association("Interests").Append(&interest); err != nil {
				return err
			}
		}

		user.VolunteerProfile = profile
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and stamps last_login_at.
func (s *AuthService) Login(email, password string) (*model.User, error) {
	var user model.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, fmt.Errorf("40105:invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("40105:invalid email or password")
	}
	if user.Status == 0 {
		return nil, fmt.Errorf("40104:account disabled")
	}

	now := time.Now()
	s.db.Model(&user).Update("last_login_at", &now)
	user.LastLoginAt = &now
	return &user, nil
}

// IssueTokens returns an access + refresh pair for the user.
func (s *AuthService) IssueTokens(user *model.User) (access, refresh string, err error) {
	return jwtpkg.GeneratePair(s.jwtSecret, user.ID, user.Role, user.IsAdmin, s.accessTTL, s.refreshTTL)
}

// Refresh exchanges a valid, non-blacklisted refresh token for a new pair.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (access, refresh string, err error) {
	claims, err := jwtpkg.ParseTyped(s.jwtSecret, refreshToken, jwtpkg.TypeRefresh)
	if err != nil {
		return "", "", fmt.Errorf("40103:invalid refresh token")
	}
	blacklisted, err := s.isBlacklisted(ctx, claims.ID)
	if err == nil && blacklisted {
		return "", "", fmt.Errorf("40103:refresh token revoked")
	}

	var user model.User
	if err := s.db.First(&user, claims.UserID).Error; err != nil {
		return "", "", fmt.Errorf("40103:account not found")
	}
	if user.Status == 0 {
		return "", "", fmt.Errorf("40104:account disabled")
	}
	return s.IssueTokens(&user)
}

// Verify checks a token of either type without touching the database.
func (s *AuthService) Verify(tokenStr string) error {
	if _, err := jwtpkg.ParseToken(s.jwtSecret, tokenStr); err != nil {
		return fmt.Errorf("40103:token is invalid or expired")
	}
	return nil
}

// Logout blacklists the refresh token's JTI until its natural expiry.
// Access tokens are short-lived and expire on their own.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	claims, err := jwtpkg.ParseTyped(s.jwtSecret, refreshToken, jwtpkg.TypeRefresh)
	if err != nil {
		return fmt.Errorf("40001:invalid refresh token")
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	return s.rdb.Set(ctx, blacklistKeyPrefix+claims.ID, 1, ttl).Err()
}

func (s *AuthService) isBlacklisted(ctx context.Context, jti string) (bool, error) {
	n, err := s.rdb.Exists(ctx, blacklistKeyPrefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// GetUserByID loads the account with its volunteer profile and tags.
func (s *AuthService) GetUserByID(id uint) (*model.User, error) {
	var user model.User
	err := s.db.Preload("VolunteerProfile").
		Preload("VolunteerProfile.Skills").
		Preload("VolunteerProfile.Interests").
		First(&user, id).Error
	if err != nil {
		return nil, fmt.Errorf("40401:account not found")
	}
	return &user, nil
}
