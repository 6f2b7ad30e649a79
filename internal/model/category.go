package model

// Categories is the fixed set of interest tags available to users and posts.
// The order here is the order the API returns them in.
var Categories = []string{
	"Technology", "Travel", "Food", "Fashion", "Fitness",
	"Music", "Art", "Gaming", "Sports", "Photography",
	"Business", "Health", "Education", "Entertainment", "Lifestyle",
}

var categorySet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(Categories))
	for _, c := range Categories {
		set[c] = struct{}{}
	}
	return set
}()

// IsValidCategory reports whether tag is one of the fixed categories.
func IsValidCategory(tag string) bool {
	_, ok := categorySet[tag]
	return ok
}
