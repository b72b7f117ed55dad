package component

// IntentScript drives an entity's Intent from a tengo script.
type IntentScript struct {
	Path string
	// State is carried between invocations and exposed to the script.
	State map[string]any
}

var IntentScriptComponent = NewComponent[IntentScript]()
