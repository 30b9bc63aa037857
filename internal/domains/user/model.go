package user

// User là admin account dùng cho backend login.
// Tạo duy nhất qua cmd/createadmin, không bao giờ qua public API.
type User struct {
	ID           int64  `db:"id"`
	Username     string `db:"username"`
	PasswordHash string `db:"password_hash"`
}
