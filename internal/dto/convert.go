package dto

import (
	"errors"
	"time"

	"github.com/notefold/notes-service/pkg/timex"

	"github.com/jinzhu/copier"
)

// timeConverters teaches copier to map time.Time onto timex.Time when
// copying domain models into DTOs.
var timeConverters = []copier.TypeConverter{
	{
		SrcType: time.Time{},
		DstType: timex.Time{},
		Fn: func(src interface{}) (interface{}, error) {
			t, ok := src.(time.Time)
			if !ok {
				return nil, errors.New("source is not time.Time")
			}
			return timex.Time(t), nil
		},
	},
}
