package article

// Article đại diện cho một bài viết thuộc một chuyên mục
type Article struct {
	ID         int64  `db:"id"`
	Slug       string `db:"slug"`
	UID        string `db:"uid"`
	Title      string `db:"title"`
	Date       string `db:"date"`
	Content    string `db:"content"`
	CategoryID int64  `db:"category_id"`
}
