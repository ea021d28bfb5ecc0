package api

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/liamashdown/flowintel/internal/metrics"
)

// Query parameters per route. Defaults and bounds live in the tags.

type entitiesParams struct {
	Network    string `form:"network"`
	EntityType string `form:"entity_type"`
	Search     string `form:"search"`
	Limit      int    `form:"limit,default=20" binding:"min=1,max=100"`
	Offset     int    `form:"offset,default=0" binding:"min=0"`
}

type transactionsParams struct {
	Network  string   `form:"network"`
	TxType   string   `form:"tx_type"`
	MinValue *float64 `form:"min_value" binding:"omitempty,min=0"`
	MaxValue *float64 `form:"max_value" binding:"omitempty,min=0"`
	Address  string   `form:"address"`
	Limit    int      `form:"limit,default=50" binding:"min=1,max=100"`
	Offset   int      `form:"offset,default=0" binding:"min=0"`
}

type poolsParams struct {
	Network      string   `form:"network"`
	Protocol     string   `form:"protocol"`
	MinLiquidity *float64 `form:"min_liquidity" binding:"omitempty,min=0"`
	Limit        int      `form:"limit,default=20" binding:"min=1,max=100"`
	Offset       int      `form:"offset,default=0" binding:"min=0"`
}

type alertsParams struct {
	Network   string `form:"network"`
	AlertType string `form:"alert_type"`
	Severity  string `form:"severity"`
	Limit     int    `form:"limit,default=20" binding:"min=1,max=100"`
	Offset    int    `form:"offset,default=0" binding:"min=0"`
}

type flowGraphParams struct {
	Network string `form:"network"`
	Limit   int    `form:"limit,default=20" binding:"min=1,max=50"`
}

type searchParams struct {
	Q     string `form:"q" binding:"required,min=2"`
	Limit int    `form:"limit,default=10" binding:"min=1,max=50"`
}

type priceHistoryParams struct {
	Period string `form:"period,default=7d" binding:"oneof=1d 7d 30d 90d"`
}

type transfersParams struct {
	Limit int `form:"limit,default=15" binding:"min=1,max=50"`
}

type tokenTransfersParams struct {
	Limit int `form:"limit,default=10" binding:"min=1,max=50"`
}

type chartParams struct {
	Period     string `form:"period"`
	VolumeType string `form:"volume_type,default=spot"`
}

// errorResponse is the body of every rejected request
type errorResponse struct {
	Detail string `json:"detail"`
}

func init() {
	// Report query parameter names instead of Go field names.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("form"), ",")
			if name == "" || name == "-" {
				return f.Name
			}
			return name
		})
	}
}

// bindQuery binds c's query string into dst and answers 422 on failure.
// It reports whether the handler should continue.
func bindQuery(c *gin.Context, dst any) bool {
	if err := c.ShouldBindQuery(dst); err != nil {
		metrics.RecordValidationError(c.FullPath())
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, errorResponse{Detail: describe(err)})
		return false
	}
	return true
}

func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, describeField(fe))
	}
	return strings.Join(parts, "; ")
}

func describeField(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s: field required", fe.Field())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s: must have at least %s characters", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s: must be greater than or equal to %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s: must be less than or equal to %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s: must be one of %s", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("%s: failed %s validation", fe.Field(), fe.Tag())
	}
}
