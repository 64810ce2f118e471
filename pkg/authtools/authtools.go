// Package authtools содержит построение и проверку токенов запроса.
//
// Токен пользователя - SHA-512 от конкатенации account+login+salt.
// Токен администратора привязан ко времени: SHA-512 от текущего часа
// в формате YYYYMMDDHH и административной соли.
package authtools

import (
	"crypto/sha512"
	"encoding/hex"
	"time"
)

const adminHourLayout = "2006010215"

// UserDigest - Строит токен обычного пользователя.
func UserDigest(account, login, salt string) string {
	sum := sha512.Sum512([]byte(account + login + salt))
	return hex.EncodeToString(sum[:])
}

// AdminDigest - Строит токен администратора на заданный час.
func AdminDigest(t time.Time, adminSalt string) string {
	sum := sha512.Sum512([]byte(t.Format(adminHourLayout) + adminSalt))
	return hex.EncodeToString(sum[:])
}

// VerifyUser - Проверяет токен пользователя.
func VerifyUser(token, account, login, salt string) bool {
	return token == UserDigest(account, login, salt)
}

// VerifyAdmin - Проверяет токен администратора на текущий час.
func VerifyAdmin(token, adminSalt string) bool {
	return token == AdminDigest(time.Now(), adminSalt)
}
