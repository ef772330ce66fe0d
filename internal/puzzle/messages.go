package puzzle

// Messages is the feedback copy shown after each action.
type Messages struct {
	Timeout string
	Empty   string
	Wrong   string
	Correct string
}

// DefaultMessages is the copy shipped with the builtin set.
func DefaultMessages() Messages {
	return Messages{
		Timeout: "Hết giờ! Hàng đã bị khóa.",
		Empty:   "Nhập đáp án trước khi kiểm tra.",
		Wrong:   "Ối dồi ôi sai rồi 😵",
		Correct: "Tuyệt vời ông mặt trời 🌞",
	}
}

// Merge fills blank fields of m from fallback.
func (m Messages) Merge(fallback Messages) Messages {
	if m.Timeout == "" {
		m.Timeout = fallback.Timeout
	}
	if m.Empty == "" {
		m.Empty = fallback.Empty
	}
	if m.Wrong == "" {
		m.Wrong = fallback.Wrong
	}
	if m.Correct == "" {
		m.Correct = fallback.Correct
	}
	return m
}
