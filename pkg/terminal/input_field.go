package terminal

// InputField is the single-line command prompt.
type InputField struct {
	Content string
	Cursor  int
}

func NewInputField() InputField {
	return InputField{}
}

func (inf InputField) InsertRune(r rune) InputField {
	content := inf.Content
	left := content[:inf.Cursor]
	right := content[inf.Cursor:]

	return InputField{
		Content: left + string(r) + right,
		Cursor:  inf.Cursor + len(string(r)),
	}
}

func (inf InputField) DeleteBackward() InputField {
	if inf.Cursor == 0 {
		return inf
	}

	runes := []rune(inf.Content[:inf.Cursor])
	trimmed := string(runes[:len(runes)-1])

	return InputField{
		Content: trimmed + inf.Content[inf.Cursor:],
		Cursor:  len(trimmed),
	}
}

func (inf InputField) Clear() InputField {
	return InputField{}
}

func (inf InputField) IsEmpty() bool {
	return inf.Content == ""
}
