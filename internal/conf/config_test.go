//go:build unit

package conf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prashantv/gostub"
	. "github.com/smartystreets/goconvey/convey"
)

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "chainhashmap.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	Convey("Given no config file", t, func() {
		cfg, err := LoadConfig("")

		Convey("Then the defaults are returned", func() {
			So(err, ShouldBeNil)
			So(cfg, ShouldResemble, DefaultConfig())
			So(cfg.MaxKeyLength, ShouldEqual, DefaultMaxKeyLength)
			So(cfg.KeyPolicy, ShouldEqual, KeyPolicyReject)
		})
	})

	Convey("Given a valid config file", t, func() {
		path := writeConfig(t, `
capacity = 32
key_policy = "truncate"
hash_algorithm = "xxhash"

[log]
level = "debug"
format = "json"
`)

		Convey("When it is loaded", func() {
			cfg, err := LoadConfig(path)

			Convey("Then file values override the defaults", func() {
				So(err, ShouldBeNil)
				So(cfg.Capacity, ShouldEqual, int64(32))
				So(cfg.KeyPolicy, ShouldEqual, KeyPolicyTruncate)
				So(cfg.HashAlgorithm, ShouldEqual, "xxhash")
				So(cfg.Log.Level, ShouldEqual, "debug")
				So(cfg.Log.Format, ShouldEqual, "json")
			})

			Convey("Then values missing from the file keep their defaults", func() {
				So(cfg.MaxKeyLength, ShouldEqual, DefaultMaxKeyLength)
				So(cfg.Log.MaxSize, ShouldEqual, 512)
			})
		})
	})

	Convey("Given an invalid config file", t, func() {
		Convey("When a key is unknown", func() {
			_, err := LoadConfig(writeConfig(t, "buckets = 10\n"))
			So(err, ShouldNotBeNil)
		})

		Convey("When the capacity is negative", func() {
			_, err := LoadConfig(writeConfig(t, "capacity = -1\n"))
			So(err, ShouldNotBeNil)
		})

		Convey("When the key policy is unknown", func() {
			_, err := LoadConfig(writeConfig(t, "key_policy = \"ignore\"\n"))
			So(err, ShouldNotBeNil)
		})

		Convey("When the hash algorithm is unknown", func() {
			_, err := LoadConfig(writeConfig(t, "hash_algorithm = \"md5\"\n"))
			So(err, ShouldNotBeNil)
		})

		Convey("When the file does not exist", func() {
			_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
			So(err, ShouldNotBeNil)
		})
	})
}

func TestResolvePath(t *testing.T) {
	Convey("Given the config environment variable is set", t, func() {
		stubs := gostub.Stub(&lookupEnv, func(key string) (string, bool) {
			if key == ConfigEnvVar {
				return "/etc/chainhashmap.toml", true
			}
			return "", false
		})
		defer stubs.Reset()

		Convey("Then the flag value wins", func() {
			So(ResolvePath("local.toml"), ShouldEqual, "local.toml")
		})

		Convey("Then the environment is used without flag", func() {
			So(ResolvePath(""), ShouldEqual, "/etc/chainhashmap.toml")
		})
	})

	Convey("Given the config environment variable is not set", t, func() {
		stubs := gostub.Stub(&lookupEnv, func(key string) (string, bool) { return "", false })
		defer stubs.Reset()

		So(ResolvePath(""), ShouldEqual, "")
	})
}
