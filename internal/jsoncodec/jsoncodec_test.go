package jsoncodec

import (
	"bytes"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

type route struct {
	Unit     string  `json:"unit"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

func TestCodec(t *testing.T) {
	Convey("Given the shared codec", t, func() {
		Convey("Marshal keeps struct field order and integral floats", func() {
			b, err := Marshal(route{Unit: "flat", Amount: 100, Currency: "IDR"})
			So(err, ShouldBeNil)
			So(string(b), ShouldEqual, `{"unit":"flat","amount":100,"currency":"IDR"}`)
		})

		Convey("Unmarshal round-trips a document", func() {
			var r route
			So(Unmarshal([]byte(`{"unit":"flat","amount":2500.5,"currency":"IDR"}`), &r), ShouldBeNil)
			So(r.Amount, ShouldEqual, 2500.5)
		})

		Convey("Encode appends a newline", func() {
			var buf bytes.Buffer
			So(Encode(&buf, map[string]int{"b": 2, "a": 1}), ShouldBeNil)
			So(buf.String(), ShouldEqual, "{\"a\":1,\"b\":2}\n")
		})

		Convey("MarshalIndent indents", func() {
			b, err := MarshalIndent(map[string]string{"k": "v"}, "", "  ")
			So(err, ShouldBeNil)
			So(string(b), ShouldEqual, "{\n  \"k\": \"v\"\n}")
		})

		Convey("Valid rejects malformed input", func() {
			So(Valid([]byte(`{"a":1}`)), ShouldBeTrue)
			So(Valid([]byte(`{"a":`)), ShouldBeFalse)
			So(Valid([]byte(`<html>`)), ShouldBeFalse)
		})
	})
}
