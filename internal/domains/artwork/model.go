package artwork

// Artwork đại diện cho một tác phẩm trong gallery
type Artwork struct {
	ID          int64  `db:"id"`
	Title       string `db:"title"`
	Thumbnail   string `db:"thumbnail"`
	Fullsize    string `db:"fullsize"`
	Description string `db:"description"`
	Date        string `db:"date"`
}
