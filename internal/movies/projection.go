package movies

// summaryChars is how many description characters a summary keeps.
const summaryChars = 50

// FullMovie is the complete response shape for a movie. It carries exactly
// the ten catalog fields and never the store timestamps.
type FullMovie struct {
	ID             int64  `json:"id"`
	Title          string `json:"title"`
	Year           int    `json:"year"`
	Length         int    `json:"length"`
	Director       string `json:"director"`
	Description    string `json:"description"`
	PosterURL      string `json:"posterUrl"`
	Category       string `json:"category"`
	Discount       bool   `json:"discount"`
	FemaleDirector bool   `json:"femaleDirector"`
}

// Summary is the condensed response shape for a movie.
type Summary struct {
	Summary string `json:"summary"`
}

// Full projects a movie into its complete response shape.
func Full(m Movie) FullMovie {
	return FullMovie{
		ID:             m.ID,
		Title:          m.Title,
		Year:           m.Year,
		Length:         m.Length,
		Director:       m.Director,
		Description:    m.Description,
		PosterURL:      m.PosterURL,
		Category:       m.Category,
		Discount:       m.Discount,
		FemaleDirector: m.FemaleDirector,
	}
}

// Summarize projects a movie into "<title> - <description>...", keeping at
// most the first 50 characters of the description. The ellipsis is appended
// whether or not anything was cut.
func Summarize(m Movie) Summary {
	desc := []rune(m.Description)
	if len(desc) > summaryChars {
		desc = desc[:summaryChars]
	}
	return Summary{Summary: m.Title + " - " + string(desc) + "..."}
}

// FullAll projects a slice of movies in order. The result is never nil, so
// an empty catalog still encodes as a JSON array.
func FullAll(ms []Movie) []FullMovie {
	out := make([]FullMovie, len(ms))
	for i, m := range ms {
		out[i] = Full(m)
	}
	return out
}

// SummarizeAll projects a slice of movies in order. The result is never nil.
func SummarizeAll(ms []Movie) []Summary {
	out := make([]Summary, len(ms))
	for i, m := range ms {
		out[i] = Summarize(m)
	}
	return out
}
