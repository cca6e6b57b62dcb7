package driver

import (
	"crypto/sha256"
	"testing"
)

func openTestCache(t *testing.T) *DiskCache {
	t.Helper()
	cache, err := OpenDiskCache("modmap-test", t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	return cache
}

func TestDiskCacheRoundTrip(t *testing.T) {
	cache := openTestCache(t)
	key := sha256.Sum256([]byte("module Foo {}"))

	in := DiskPayload{
		Schema:     diskCacheSchemaVersion,
		Path:       "Foo/module.modulemap",
		ModuleName: "Foo",
		Headers:    []string{"Foo.h", "Bar.h"},
	}
	if err := cache.Put(key, &in); err != nil {
		t.Fatal(err)
	}

	var out DiskPayload
	hit, err := cache.Get(key, &out)
	if err != nil {
		t.Fatal(err)
	}
	if !hit {
		t.Fatal("expected a hit")
	}
	if out.ModuleName != "Foo" || len(out.Headers) != 2 || out.Headers[0] != "Foo.h" {
		t.Errorf("payload = %+v", out)
	}
}

func TestDiskCacheMiss(t *testing.T) {
	cache := openTestCache(t)
	var out DiskPayload
	hit, err := cache.Get(sha256.Sum256([]byte("absent")), &out)
	if err != nil {
		t.Fatal(err)
	}
	if hit {
		t.Fatal("unexpected hit")
	}
}

func TestDiskCacheSchemaMismatch(t *testing.T) {
	cache := openTestCache(t)
	key := sha256.Sum256([]byte("stale"))
	if err := cache.Put(key, &DiskPayload{Schema: diskCacheSchemaVersion + 1}); err != nil {
		t.Fatal(err)
	}
	var out DiskPayload
	hit, err := cache.Get(key, &out)
	if err != nil {
		t.Fatal(err)
	}
	if hit {
		t.Fatal("schema mismatch must read as a miss")
	}
}

func TestDiskCacheDropAll(t *testing.T) {
	cache := openTestCache(t)
	key := sha256.Sum256([]byte("module Foo {}"))
	if err := cache.Put(key, &DiskPayload{Schema: diskCacheSchemaVersion, ModuleName: "Foo"}); err != nil {
		t.Fatal(err)
	}

	if err := cache.DropAll(); err != nil {
		t.Fatal(err)
	}

	var out DiskPayload
	hit, err := cache.Get(key, &out)
	if err != nil {
		t.Fatal(err)
	}
	if hit {
		t.Fatal("dropped cache must read as a miss")
	}

	// the cache stays usable after a drop
	if err := cache.Put(key, &DiskPayload{Schema: diskCacheSchemaVersion, ModuleName: "Foo"}); err != nil {
		t.Fatal(err)
	}
	if hit, err := cache.Get(key, &out); err != nil || !hit {
		t.Fatalf("hit=%v err=%v after re-put", hit, err)
	}
}

func TestDiskCacheNilReceiver(t *testing.T) {
	var cache *DiskCache
	key := sha256.Sum256([]byte("x"))
	if err := cache.Put(key, &DiskPayload{}); err != nil {
		t.Fatal(err)
	}
	var out DiskPayload
	if hit, err := cache.Get(key, &out); err != nil || hit {
		t.Fatalf("hit=%v err=%v", hit, err)
	}
}

func TestPublicHeadersCached(t *testing.T) {
	cache := openTestCache(t)
	path := writeMap(t, t.TempDir(), "module.modulemap", `
module Foo {
  header "Foo.h"
  private header "Secret.h"
}
`)

	payload, res, err := PublicHeadersCached(cache, path, 16)
	if err != nil {
		t.Fatal(err)
	}
	if res == nil {
		t.Fatal("first call must parse")
	}
	if payload.Broken || payload.ModuleName != "Foo" {
		t.Fatalf("payload = %+v", payload)
	}
	if len(payload.Headers) != 1 || payload.Headers[0] != "Foo.h" {
		t.Errorf("headers = %v", payload.Headers)
	}

	// second call hits the cache and skips the parse
	payload2, res2, err := PublicHeadersCached(cache, path, 16)
	if err != nil {
		t.Fatal(err)
	}
	if res2 != nil {
		t.Error("second call should not parse")
	}
	if payload2.ModuleName != "Foo" || len(payload2.Headers) != 1 {
		t.Errorf("cached payload = %+v", payload2)
	}
}

func TestPublicHeadersCachedBroken(t *testing.T) {
	cache := openTestCache(t)
	path := writeMap(t, t.TempDir(), "module.modulemap", `module Foo {`)

	payload, res, err := PublicHeadersCached(cache, path, 16)
	if err != nil {
		t.Fatal(err)
	}
	if !payload.Broken {
		t.Error("payload should be broken")
	}
	if res.Err == nil {
		t.Error("result should carry the parse error")
	}
}
