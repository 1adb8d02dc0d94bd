// Copyright (c) 2020. Temple3x (temple3x@gmail.com)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/zaibyte/xcrc/config"
	"github.com/zaibyte/xcrc/config/settings"
	"github.com/zaibyte/xcrc/crc"
	"github.com/zaibyte/xcrc/diskutil"
	"github.com/zaibyte/xcrc/errno"
	"github.com/zaibyte/xcrc/metricutil"
	"github.com/zaibyte/xcrc/source"
	"github.com/zaibyte/xcrc/uid/instanceid"
	"github.com/zaibyte/xcrc/xerrors"
	"github.com/zaibyte/xcrc/xlog"

	"github.com/templexxx/tsc"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const stdinName = "-"

type command struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	e    *crc.Engine
	opts []source.Option
	jobs int
	rl   *xlog.RecordLogger
}

type result struct {
	sum     uint64
	size    int64
	elapsed time.Duration
	err     error
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("xcrc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		alg       = fs.String("a", settings.DefaultAlgorithm, "algorithm name (case and separators are ignored), see -list")
		cfgPath   = fs.String("config", "", "TOML config file")
		list      = fs.Bool("list", false, "list algorithms with their check values")
		checkFile = fs.String("c", "", "verify checksums listed in file, \"-\" for stdin")
		byteList  = fs.String("bytes", "", "checksum comma separated byte values, e.g. \"65,66,67\"")
		decode    = fs.String("decode", "", "decompress sources before checksumming: gzip, zstd or lz4")
		jobs      = fs.Int("j", settings.DefaultConcurrency, "sources checksummed in parallel")
		chunk     = fs.String("chunk", "", "read chunk size, e.g. 64KiB")
		rate      = fs.String("rate", "", "read rate limit of each source in bytes/s, e.g. 10MB")
		debug     = fs.Bool("debug", false, "enable debug log")
	)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: xcrc [flags] [FILE...]\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return int(errno.ErrInvalidConfig)
	}

	c := &command{stdin: stdin, stdout: stdout, stderr: stderr}

	if *list {
		c.list()
		return 0
	}

	cfg := new(Config)
	if *cfgPath != "" {
		if err := config.Load(*cfgPath, cfg); err != nil {
			return c.fail(err)
		}
	}
	var err error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "a":
			cfg.Algorithm = *alg
		case "decode":
			cfg.Decoder = *decode
		case "j":
			cfg.Concurrency = *jobs
		case "chunk":
			err = errors.Join(err, cfg.ChunkSize.UnmarshalText([]byte(*chunk)))
		case "rate":
			err = errors.Join(err, cfg.RateLimit.UnmarshalText([]byte(*rate)))
		}
	})
	if err != nil {
		return c.fail(err)
	}
	cfg.adjust()

	el, rl, err := cfg.Log.MakeCmdLogger("xcrc")
	if err != nil {
		return c.fail(xerrors.WithMessagef(errno.ErrInvalidConfig, "make logger: %s", err))
	}
	defer el.Close()
	defer rl.Close()
	if *debug {
		xlog.DebugOn()
	}

	pusher := metricutil.StartPusher(&cfg.Metric, instanceid.Get())
	defer pusher.Stop()

	if err = c.init(cfg, rl); err != nil {
		return c.fail(err)
	}

	switch {
	case *checkFile != "":
		err = c.check(*checkFile)
	case *byteList != "":
		err = c.sumBytes(*byteList)
	default:
		err = c.sumSources(fs.Args())
	}
	return int(errno.ErrToErrno(err))
}

func (c *command) init(cfg *Config, rl *xlog.RecordLogger) error {
	a, err := crc.Lookup(cfg.Algorithm)
	if err != nil {
		return err
	}
	e, err := crc.New(a)
	if err != nil {
		return err
	}
	codec, err := source.ParseCodec(cfg.Decoder)
	if err != nil {
		return err
	}

	c.e = e
	c.jobs = cfg.Concurrency
	c.rl = rl
	c.opts = []source.Option{
		source.WithChunkSize(int(cfg.ChunkSize)),
		source.WithRateLimit(int64(cfg.RateLimit)),
		source.WithDecoder(codec),
	}

	xlog.Debug("xcrc is ready",
		zap.String("alg", a.Name),
		zap.String("accel", e.Accelerated()),
		zap.String("chunk_size", cfg.ChunkSize.String()),
		zap.Int("concurrency", c.jobs))
	return nil
}

// fail prints err and returns its errno.
func (c *command) fail(err error) int {
	fmt.Fprintf(c.stderr, "xcrc: %v\n", err)
	return int(errno.ErrToErrno(err))
}

func (c *command) list() {
	w := tabwriter.NewWriter(c.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tWIDTH\tPOLY\tINIT\tREFIN\tREFOUT\tXOROUT\tCHECK")
	for _, a := range crc.Algorithms() {
		n := int(a.Width / 8)
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%t\t%t\t%s\t%s\n",
			a.Name, a.Width, formatSum(a.Poly, n), formatSum(a.Init, n), a.RefIn, a.RefOut,
			formatSum(a.XorOut, n), formatSum(crc.MustNew(a).Checksum([]byte("123456789")), n))
	}
	w.Flush()
}

// sumOne checksums the source called name.
func (c *command) sumOne(name string) (r result) {
	start := tsc.UnixNano()
	if name == stdinName {
		r.sum, r.size, r.err = source.Sum(c.e, c.stdin, c.opts...)
	} else {
		r.sum, r.size, r.err = source.SumFile(c.e, name, c.opts...)
	}
	r.elapsed = time.Duration(tsc.UnixNano() - start)

	alg := c.e.Algorithm().Name
	metricutil.Observe(alg, r.size, r.elapsed, r.err)

	rec := &xlog.Record{
		Alg:     alg,
		Source:  name,
		Size:    r.size,
		Elapsed: r.elapsed,
		Errno:   uint16(errno.ErrToErrno(r.err)),
		Err:     r.err,
	}
	if r.err == nil {
		rec.CRC = formatSum(r.sum, c.e.Size())
	}
	c.rl.Write(rec)
	return
}

// sumAll checksums names with at most c.jobs in parallel,
// results are in the order of names.
func (c *command) sumAll(names []string) []result {
	results := make([]result, len(names))

	var g errgroup.Group
	g.SetLimit(c.jobs)
	for i, name := range names {
		g.Go(func() error {
			results[i] = c.sumOne(name)
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func (c *command) sumSources(names []string) error {
	if len(names) == 0 {
		names = []string{stdinName}
	}

	var first error
	for i, r := range c.sumAll(names) {
		if r.err != nil {
			c.reportErr(names[i], r.err)
			if first == nil {
				first = r.err
			}
			continue
		}
		fmt.Fprintf(c.stdout, "%s  %s\n", formatSum(r.sum, c.e.Size()), names[i])
	}
	return first
}

func (c *command) sumBytes(list string) error {
	parts := strings.Split(list, ",")
	vals := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			err = xerrors.WithMessagef(errno.ErrByteOutOfRange, "%q is not a byte value", p)
			c.reportErr("-bytes", err)
			return err
		}
		vals[i] = v
	}

	sum, err := source.SumInts(c.e, vals)
	if err != nil {
		c.reportErr("-bytes", err)
		return err
	}
	fmt.Fprintf(c.stdout, "%s\n", formatSum(sum, c.e.Size()))
	return nil
}

func (c *command) check(path string) error {
	var in io.Reader = c.stdin
	if path != stdinName {
		f, err := os.Open(path)
		if err != nil {
			c.reportErr(path, err)
			return err
		}
		defer f.Close()
		in = f
	}

	entries, err := readCheckFile(in, c.e.Size())
	if err != nil {
		c.reportErr(path, err)
		return err
	}

	names := make([]string, len(entries))
	for i, ent := range entries {
		names[i] = ent.name
	}

	var (
		first      error
		mismatched int
	)
	for i, r := range c.sumAll(names) {
		ent := entries[i]
		switch {
		case r.err != nil:
			fmt.Fprintf(c.stdout, "%s: FAILED open or read\n", ent.name)
			c.reportErr(ent.name, r.err)
		case r.sum != ent.sum:
			mismatched++
			r.err = xerrors.WithMessagef(errno.ErrChecksumMismatch, "%s: got %s, want %s",
				ent.name, formatSum(r.sum, c.e.Size()), formatSum(ent.sum, c.e.Size()))
			fmt.Fprintf(c.stdout, "%s: FAILED\n", ent.name)
			xlog.Warn("checksum mismatch", zap.Error(r.err))
		default:
			fmt.Fprintf(c.stdout, "%s: OK\n", ent.name)
		}
		if r.err != nil && first == nil {
			first = r.err
		}
	}
	if mismatched > 0 {
		fmt.Fprintf(c.stderr, "xcrc: WARNING: %d of %d computed checksums did NOT match\n",
			mismatched, len(entries))
	}
	return first
}

func (c *command) reportErr(name string, err error) {
	fmt.Fprintf(c.stderr, "xcrc: %s: %v\n", name, err)
	xlog.Error("checksum failed",
		zap.String("source", name),
		zap.String("kind", diskutil.Kind(err)),
		zap.Error(err))
}
