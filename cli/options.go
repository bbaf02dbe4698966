package cli

type Options struct {
	InputURL   string   `short:"i" long:"input" description:"namespace JSON source URL"`
	Levels     []string `short:"l" long:"level" description:"namespace level, repeat for nested levels"`
	UUID       *string  `long:"uuid" description:"namespace uuid to attach, may be empty"`
	AssignUUID bool     `short:"a" long:"assign-uuid" description:"attach a random uuid when none is present"`
	Pretty     bool     `short:"p" long:"pretty" description:"indent output"`
	OutputURL  string   `short:"o" long:"output" description:"destination URL, stdout when empty"`
}
