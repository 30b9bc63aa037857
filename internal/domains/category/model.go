package category

// Category đại diện cho một chuyên mục bài viết
type Category struct {
	ID   int64  `db:"id" json:"id"`
	Slug string `db:"slug" json:"slug"`
	Name string `db:"name" json:"name"`
}
