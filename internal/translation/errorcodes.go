package translation

// providerErrorDescriptions maps the provider's business error codes to the
// descriptions used in diagnostic messages. Lookup data only; codes outside
// the table report as "Unknown Error".
var providerErrorDescriptions = map[string]string{
	"102": "Unsupported language type",
	"103": "Translated text too long",
	"202": "Signature check failed",
	"207": "Replayed request",
	"302": "Translation query failed",
	"303": "Server-side exception",
	"304": "Session idle timeout",
	"401": "Account overdue or quota exhausted",
	"411": "Access frequency limited",
	"412": "Long requests too frequent",
}

func errorDescription(code string) string {
	if description, ok := providerErrorDescriptions[code]; ok {
		return description
	}
	return "Unknown Error"
}
