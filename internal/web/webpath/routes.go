package webpath

const (
	Home           = "/"
	Import         = "/import"
	StartingRating = "/starting-rating"
	ClearMatches   = "/matches/clear"
	DeleteMatch    = "/matches/:index/delete"

	Api           = "/api"
	ApiResult     = Api + "/result"
	ApiMatches    = Api + "/matches"
	ApiImport     = Api + "/import"
	ApiMatchIndex = Api + "/matches/:index"
)

func Path() map[string]string {
	return map[string]string{
		"Home":           Home,
		"Import":         Import,
		"StartingRating": StartingRating,
		"ClearMatches":   ClearMatches,
		"ApiResult":      ApiResult,
		"ApiMatches":     ApiMatches,
	}
}
