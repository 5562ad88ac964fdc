package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Coullax/disaster-relief-management/internal/models"
	"github.com/Coullax/disaster-relief-management/internal/storage"
	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// challengeDoc — документ коллекции otp_challenges; _id — e-mail.
type challengeDoc struct {
	Email     string    `bson:"_id"`
	CodeHash  string    `bson:"code_hash"`
	Attempts  int       `bson:"attempts"`
	CreatedAt time.Time `bson:"created_at"`
	ExpiresAt time.Time `bson:"expires_at"`
}

func (d challengeDoc) toModel() *models.OTPChallenge {
	return &models.OTPChallenge{
		Email:     d.Email,
		CodeHash:  d.CodeHash,
		Attempts:  d.Attempts,
		CreatedAt: d.CreatedAt.UTC(),
		ExpiresAt: d.ExpiresAt.UTC(),
	}
}

// SaveChallenge создаёт или заменяет челлендж для e-mail (upsert по _id).
func (m *Mongo) SaveChallenge(ctx context.Context, challenge models.OTPChallenge) error {
	const op = "storage/mongo/otp/SaveChallenge"

	if challenge.Email == "" || challenge.CodeHash == "" {
		return storage.ErrInvalidArgument
	}

	doc := challengeDoc{
		Email:     challenge.Email,
		CodeHash:  challenge.CodeHash,
		Attempts:  challenge.Attempts,
		CreatedAt: challenge.CreatedAt.UTC(),
		ExpiresAt: challenge.ExpiresAt.UTC(),
	}

	_, err := m.challenges.ReplaceOne(ctx, bson.M{"_id": doc.Email}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// ChallengeByEmail возвращает челлендж, если он ещё не истёк.
// TTL-монитор MongoDB работает с задержкой, поэтому срок проверяется и в запросе.
func (m *Mongo) ChallengeByEmail(ctx context.Context, email string) (*models.OTPChallenge, error) {
	const op = "storage/mongo/otp/ChallengeByEmail"

	filter := bson.M{"_id": email, "expires_at": bson.M{"$gt": time.Now().UTC()}}

	var doc challengeDoc
	if err := m.challenges.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return doc.toModel(), nil
}

// TakeAttempt атомарно увеличивает attempts, только если челлендж не истёк
// и попыток меньше maxAttempts; возвращает документ после обновления.
// Параллельные вызовы сериализуются на документе: больше maxAttempts
// проверок кода не получит никто.
func (m *Mongo) TakeAttempt(ctx context.Context, email string, maxAttempts int) (*models.OTPChallenge, error) {
	const op = "storage/mongo/otp/TakeAttempt"

	filter := bson.M{
		"_id":        email,
		"expires_at": bson.M{"$gt": time.Now().UTC()},
		"attempts":   bson.M{"$lt": maxAttempts},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc challengeDoc
	err := m.challenges.FindOneAndUpdate(ctx, filter, bson.M{"$inc": bson.M{"attempts": 1}}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return doc.toModel(), nil
}

// ConsumeChallenge удаляет челлендж, если его хэш совпадает с codeHash.
// Из нескольких конкурентных вызовов документ получает только один.
func (m *Mongo) ConsumeChallenge(ctx context.Context, email, codeHash string) error {
	const op = "storage/mongo/otp/ConsumeChallenge"

	var doc challengeDoc
	err := m.challenges.FindOneAndDelete(ctx, bson.M{"_id": email, "code_hash": codeHash}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return storage.ErrNotFound
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// DeleteChallenge удаляет челлендж. Отсутствие документа ошибкой не считается.
func (m *Mongo) DeleteChallenge(ctx context.Context, email string) error {
	const op = "storage/mongo/otp/DeleteChallenge"

	if _, err := m.challenges.DeleteOne(ctx, bson.M{"_id": email}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
