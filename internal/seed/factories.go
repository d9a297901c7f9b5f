// Package seed provides helpers to create development and demo data for the
// application database. Not used by the server itself.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"adboard/internal/models"
	"adboard/internal/password"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db *gorm.DB
	r  *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db: db,
		r:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CreateUser persists a user with a fake unique name and a hashed password.
func (f *Factory) CreateUser() (*models.User, error) {
	hashed, err := password.Hash(gofakeit.Password(true, true, true, false, false, 12))
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     fmt.Sprintf("%s_%d", gofakeit.Username(), f.r.Intn(100000)),
		Password: hashed,
	}
	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateAdvertisement persists an advertisement owned by the given user.
// Roughly a third of generated ads carry no description.
func (f *Factory) CreateAdvertisement(owner *models.User) (*models.Advertisement, error) {
	adv := &models.Advertisement{
		Header:  gofakeit.Sentence(4),
		OwnerID: owner.ID,
	}
	if f.r.Intn(3) > 0 {
		desc := gofakeit.Paragraph(1, 2, 6, " ")
		adv.Desc = &desc
	}

	if err := f.db.Create(adv).Error; err != nil {
		return nil, err
	}
	return adv, nil
}

// Run seeds the given number of users, each with up to maxAdsPerUser ads.
func (f *Factory) Run(users, maxAdsPerUser int) error {
	for i := 0; i < users; i++ {
		user, err := f.CreateUser()
		if err != nil {
			return fmt.Errorf("seeding user %d: %w", i, err)
		}

		count := f.r.Intn(maxAdsPerUser + 1)
		for j := 0; j < count; j++ {
			if _, err := f.CreateAdvertisement(user); err != nil {
				return fmt.Errorf("seeding advertisement for user %d: %w", user.ID, err)
			}
		}
		log.Printf("seeded user %q with %d advertisements", user.Name, count)
	}
	return nil
}
