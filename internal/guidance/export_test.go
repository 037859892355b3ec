package guidance

import "time"

func (handler *Handler) SetNowFunc(nowFunc func() time.Time) {
	handler.nowFunc = nowFunc
}
