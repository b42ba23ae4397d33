package mocks

// MockSaveFileFinder はSaveFileFinderのモック実装です
type MockSaveFileFinder struct {
	FoundFile string
	Error     error
	Calls     int
}

// Find はモック実装です
func (m *MockSaveFileFinder) Find() (string, error) {
	m.Calls++
	if m.Error != nil {
		return "", m.Error
	}
	return m.FoundFile, nil
}
