// storage содержит контракты слоя хранилищ relief-board.
//
// profiles.go - профили (поиск/создание по контактам, учётные записи).
// listings.go - объявления (создание, лента, карточка, счётчик просмотров).
// media.go - загрузка медиа в S3/MinIO.
// otp.go - одноразовые коды входа.
package storage

//go:generate mockgen -destination=../../mocks/storage.go -package=mocks github.com/Coullax/disaster-relief-management/internal/storage ListingsStorage,MediaStorage,OTPStorage,ProfilesStorage

import "errors"

var (
	// ErrNotFound — запись не найдена.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists — конфликт уникальности.
	ErrAlreadyExists = errors.New("already exists")
	// ErrInvalidArgument — нарушены ограничения хранилища (CHECK, тип/размер файла).
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrConflict — исчерпаны попытки разрешить гонку конкурентных вставок.
	ErrConflict = errors.New("conflict")
)
