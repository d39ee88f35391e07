package timestamp_test

import (
	"errors"
	"testing"
	"time"

	"github.com/auth-platform/libs/go/humantime/timestamp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStrict(t *testing.T) {
	tests := []struct {
		input string
		sec   int64
		nsec  uint32
	}{
		{"1970-01-01T00:00:00Z", 0, 0},
		{"2018-02-14T00:28:07Z", 1_518_568_087, 0},
		{"2000-02-29T12:00:00Z", 951_825_600, 0},
		{"1969-12-31T23:59:59.5Z", -1, 500_000_000},
		{"0001-01-01T00:00:00Z", -62_135_596_800, 0},
		{"0000-01-01T00:00:00Z", -62_167_219_200, 0},
		{"9999-12-31T23:59:59.999999999Z", 253_402_300_799, 999_999_999},
		{"1900-03-01T00:00:00Z", -2_203_891_200, 0},
		{"2018-02-14T00:28:07.1Z", 1_518_568_087, 100_000_000},
		{"2018-02-14T00:28:07.000000001Z", 1_518_568_087, 1},
		{"2018-02-14T00:28:07.123456Z", 1_518_568_087, 123_456_000},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := timestamp.ParseStrict(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.sec, got.Unix())
			assert.Equal(t, tt.nsec, got.Nanosecond())

			want, err := time.Parse(time.RFC3339Nano, tt.input)
			require.NoError(t, err)
			assert.True(t, want.Equal(got.Time()))
		})
	}
}

func TestParseStrictErrors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		kind   timestamp.ErrorKind
		offset int
		field  string
	}{
		{"empty", "", timestamp.InvalidFormat, 0, "year"},
		{"space separator", "2018-02-14 00:28:07", timestamp.InvalidFormat, 10, "'T'"},
		{"missing zone", "2018-02-14T00:28:07", timestamp.InvalidFormat, 19, "'Z'"},
		{"trailing space", "2018-02-14T00:28:07Z ", timestamp.InvalidFormat, 20, "end of input"},
		{"numeric offset", "2018-02-14T00:28:07+02:00", timestamp.InvalidFormat, 19, "'Z'"},
		{"short month", "2018-2-14T00:28:07Z", timestamp.InvalidFormat, 5, "month"},
		{"long year", "20180-02-14T00:28:07Z", timestamp.InvalidFormat, 0, "year"},
		{"short year", "018-02-14T00:28:07Z", timestamp.InvalidFormat, 0, "year"},
		{"wrong date separator", "2018/02/14T00:28:07Z", timestamp.InvalidFormat, 4, "'-'"},
		{"wrong time separator", "2018-02-14T00-28-07Z", timestamp.InvalidFormat, 13, "':'"},
		{"empty fraction", "2018-02-14T00:28:07.Z", timestamp.InvalidFormat, 20, "fraction"},
		{"long fraction", "2018-02-14T00:28:07.1234567890Z", timestamp.InvalidFormat, 20, "fraction"},
		{"letter in fraction", "2018-02-14T00:28:07.12aZ", timestamp.InvalidFormat, 22, "'Z'"},
		{"letter in year", "x018-02-14T00:28:07Z", timestamp.InvalidDigit, 0, ""},
		{"letter in month", "2018-0x-14T00:28:07Z", timestamp.InvalidDigit, 6, ""},
		{"letter in second", "2018-02-14T00:28:0?Z", timestamp.InvalidDigit, 18, ""},
		{"letter after dot", "2018-02-14T00:28:07.xZ", timestamp.InvalidDigit, 20, ""},
		{"february 30", "2018-02-30T00:00:00Z", timestamp.FieldOutOfRange, 8, "day"},
		{"february 29 non-leap", "2019-02-29T00:00:00Z", timestamp.FieldOutOfRange, 8, "day"},
		{"february 29 century", "1900-02-29T00:00:00Z", timestamp.FieldOutOfRange, 8, "day"},
		{"april 31", "2018-04-31T00:00:00Z", timestamp.FieldOutOfRange, 8, "day"},
		{"day zero", "2018-04-00T00:00:00Z", timestamp.FieldOutOfRange, 8, "day"},
		{"month zero", "2018-00-01T00:00:00Z", timestamp.FieldOutOfRange, 5, "month"},
		{"month 13", "2018-13-01T00:00:00Z", timestamp.FieldOutOfRange, 5, "month"},
		{"hour 24", "2018-02-14T24:00:00Z", timestamp.FieldOutOfRange, 11, "hour"},
		{"minute 60", "2018-02-14T23:60:00Z", timestamp.FieldOutOfRange, 14, "minute"},
		{"leap second", "2018-02-14T23:59:60Z", timestamp.FieldOutOfRange, 17, "second"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := timestamp.ParseStrict(tt.input)
			require.Error(t, err)
			assert.Equal(t, timestamp.Instant{}, got, "no partial result on error")

			var perr *timestamp.Error
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, tt.kind, perr.Kind)
			assert.Equal(t, tt.offset, perr.Offset)
			assert.Equal(t, tt.field, perr.Field)
		})
	}
}

func TestParseWeak(t *testing.T) {
	const want = 1_518_568_087

	tests := []string{
		"2018-02-14 00:28:07",
		"2018-02-14T00:28:07",
		"2018-02-14T00:28:07Z",
		"2018-02-14 00:28:07Z",
		"2018-02-14 00:28:07  ",
		"2018-02-14 00:28:07Z\n",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			got, err := timestamp.ParseWeak(input)
			require.NoError(t, err)
			assert.Equal(t, int64(want), got.Unix())
			assert.Zero(t, got.Nanosecond())
		})
	}

	got, err := timestamp.ParseWeak("2018-02-14 00:28:07.25")
	require.NoError(t, err)
	assert.Equal(t, uint32(250_000_000), got.Nanosecond())
}

func TestParseWeakErrors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		kind   timestamp.ErrorKind
		offset int
		field  string
	}{
		{"two spaces", "2018-02-14  00:28:07", timestamp.InvalidFormat, 11, "hour"},
		{"trailing garbage", "2018-02-14 00:28:07 x", timestamp.InvalidFormat, 20, "end of input"},
		{"tab separator", "2018-02-14\t00:28:07", timestamp.InvalidFormat, 10, "'T'"},
		{"date only", "2018-02-14", timestamp.InvalidFormat, 10, "'T'"},
		{"out of range day", "2018-02-30 00:00:00", timestamp.FieldOutOfRange, 8, "day"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := timestamp.ParseWeak(tt.input)
			var perr *timestamp.Error
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, tt.kind, perr.Kind)
			assert.Equal(t, tt.offset, perr.Offset)
			assert.Equal(t, tt.field, perr.Field)
		})
	}
}

func TestStrictRejectsWhatWeakAccepts(t *testing.T) {
	const input = "2018-02-14 00:28:07"

	_, err := timestamp.ParseWeak(input)
	require.NoError(t, err)

	_, err = timestamp.ParseStrict(input)
	assert.ErrorIs(t, err, timestamp.ErrInvalidFormat)
}

func TestParseErrorSentinels(t *testing.T) {
	_, err := timestamp.ParseStrict("2018-02-30T00:00:00Z")
	assert.ErrorIs(t, err, timestamp.ErrFieldOutOfRange)
	assert.NotErrorIs(t, err, timestamp.ErrInvalidFormat)
	assert.Equal(t, "day", timestamp.FieldOf(err))
	assert.EqualError(t, err, "timestamp: day is out of range at 8")

	_, err = timestamp.ParseStrict("2018-0x-14T00:28:07Z")
	assert.ErrorIs(t, err, timestamp.ErrInvalidDigit)
	assert.EqualError(t, err, "timestamp: bad character where digit is expected at 6")

	_, err = timestamp.ParseStrict("2018-02-14 00:28:07")
	assert.EqualError(t, err, "timestamp: invalid format at 10, expected 'T'")

	assert.Empty(t, timestamp.FieldOf(errors.New("other")))
}

func TestMustParse(t *testing.T) {
	assert.Equal(t, timestamp.Unix(1_518_568_087, 0), timestamp.MustParse("2018-02-14T00:28:07Z"))
	assert.Panics(t, func() { timestamp.MustParse("yesterday") })
}
