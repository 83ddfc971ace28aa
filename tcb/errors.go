package tcb

type tcbErr string

func (e tcbErr) Error() string { return string(e) }

const errInvalidThreadState tcbErr = "tcb: state byte out of range"
