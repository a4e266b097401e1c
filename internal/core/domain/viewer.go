package domain

// Viewer is the identity reading a feed or profile. It is either anonymous
// or authenticated; read paths branch on it once per entity instead of
// threading a nullable id around.
type Viewer struct {
	id string
}

func Anonymous() Viewer {
	return Viewer{}
}

func Authenticated(userID string) Viewer {
	return Viewer{id: userID}
}

// ID returns the viewer's user id and whether one is present.
func (v Viewer) ID() (string, bool) {
	return v.id, v.id != ""
}

// Is reports whether the viewer is the given authenticated user.
func (v Viewer) Is(userID string) bool {
	return v.id != "" && v.id == userID
}
