package dimacs_test

import (
	"bytes"
	"strings"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sahmed95/cnfgen/pkg/cnf"
	"github.com/sahmed95/cnfgen/pkg/dimacs"
)

func TestDimacs(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Dimacs Suite")
}

var _ = Describe("Write", func() {
	var f *cnf.CNF

	BeforeEach(func() {
		f = cnf.New()
		f.Header = "test formula"
		f.AddVariable("a", "the first variable")
		f.AddVariable("b")
		f.AddClause(cnf.Pos("a"), cnf.Neg("b"))
		f.AddClause(cnf.Pos("b"))
	})

	It("should write the problem line and the clauses", func() {
		var buf bytes.Buffer
		Expect(dimacs.Write(&buf, f, false)).To(Succeed())
		Expect(buf.String()).To(Equal("p cnf 2 2\n1 -2 0\n2 0\n"))
	})

	It("should write the header and variable descriptions as comments", func() {
		var buf bytes.Buffer
		Expect(dimacs.Write(&buf, f, true)).To(Succeed())
		Expect(buf.String()).To(HavePrefix("c test formula\nc var a : the first variable\n"))
		Expect(buf.String()).To(ContainSubstring("p cnf 2 2\n"))
	})

	It("should write multi-line headers comment by comment", func() {
		f.Header = "line one\nline two"
		var buf bytes.Buffer
		Expect(dimacs.Write(&buf, f, true)).To(Succeed())
		Expect(buf.String()).To(HavePrefix("c line one\nc line two\n"))
	})

	It("should handle the empty formula", func() {
		var buf bytes.Buffer
		Expect(dimacs.Write(&buf, cnf.New(), false)).To(Succeed())
		Expect(buf.String()).To(Equal("p cnf 0 0\n"))
	})

	It("should write the empty clause", func() {
		f := cnf.New()
		f.AddClause()
		var buf bytes.Buffer
		Expect(dimacs.Write(&buf, f, false)).To(Succeed())
		Expect(buf.String()).To(Equal("p cnf 0 1\n0\n"))
	})
})

var _ = Describe("Parse", func() {
	It("should fail if there is no header", func() {
		_, err := dimacs.Parse(strings.NewReader("1 2 3 0\n"))
		Expect(err).To(HaveOccurred())
	})

	It("should fail if clauses are missing", func() {
		_, err := dimacs.Parse(strings.NewReader("p cnf 3 3\n"))
		Expect(err).To(HaveOccurred())
	})

	It("should fail on out-of-range literals", func() {
		_, err := dimacs.Parse(strings.NewReader("p cnf 2 1\n1 3 0\n"))
		Expect(err).To(HaveOccurred())
	})

	It("should fail on unknown commands", func() {
		_, err := dimacs.Parse(strings.NewReader("p cnf 2 1\nhello\n1 2 0\n"))
		Expect(err).To(HaveOccurred())
	})

	It("should parse valid dimacs", func() {
		f, err := dimacs.Parse(strings.NewReader("c a comment\np cnf 3 2\n1 2 3 0\n-1 -2 0\n"))
		Expect(err).ToNot(HaveOccurred())
		Expect(f.Variables()).To(Equal([]cnf.Var{"1", "2", "3"}))
		Expect(f.Clauses()).To(Equal([]cnf.Clause{
			{cnf.Pos("1"), cnf.Pos("2"), cnf.Pos("3")},
			{cnf.Neg("1"), cnf.Neg("2")},
		}))
	})

	It("should parse a file without a trailing newline", func() {
		f, err := dimacs.Parse(strings.NewReader("p cnf 2 1\n1 -2 0"))
		Expect(err).ToNot(HaveOccurred())
		Expect(f.ClauseCount()).To(Equal(1))
	})

	It("should round-trip a written formula", func() {
		f := cnf.New()
		f.AddClause(cnf.Pos("a"), cnf.Neg("b"))
		f.AddClause(cnf.Neg("a"), cnf.Pos("c"))

		var buf bytes.Buffer
		Expect(dimacs.Write(&buf, f, true)).To(Succeed())

		parsed, err := dimacs.Parse(&buf)
		Expect(err).ToNot(HaveOccurred())
		Expect(parsed.VariableCount()).To(Equal(f.VariableCount()))
		Expect(parsed.ClauseCount()).To(Equal(f.ClauseCount()))
	})
})
