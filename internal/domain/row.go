package domain

// OutputRow is one word-frequency record appended to the daily output file.
type OutputRow struct {
	// Word is the normalized token
	Word string
	// Context is one representative sentence containing the word, may be empty
	Context string
	// Source is the name of the source the article came from
	Source string
	// ArticleDate is the article's publication date (ISO date, may be empty)
	ArticleDate string
	// ScrapedDate is the timestamp the article was fetched
	ScrapedDate string
	// Title of the article the word was counted in
	Title string
	// Frequency is the occurrence count within the article, always positive
	Frequency int
}
