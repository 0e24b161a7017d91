package backend

import "fmt"

// Query is a serialized document-list filter in the backend's query syntax.
type Query string

func Equal(attribute string, value string) Query {
	return Query(fmt.Sprintf(`equal("%s",["%s"])`, attribute, value))
}

func OrderDesc(attribute string) Query {
	return Query(fmt.Sprintf(`orderDesc("%s")`, attribute))
}

func OrderAsc(attribute string) Query {
	return Query(fmt.Sprintf(`orderAsc("%s")`, attribute))
}
