// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"
)

// Id identifies a catalog entry.
type Id int

const (
	JavaNotFoundId Id = iota + 1
	ClasspathEmptyId
	ConfigLoadFailedId
	PropertyFileInvalidId
	BenchmarkFailedId
	BenchmarkTimedOutId
)

type (
	// MarkdownMsg is Markdown guidance shown to the operator.
	MarkdownMsg string

	// HttpLink is a documentation URL.
	HttpLink string

	// Issue is a well-known failure with remediation guidance.
	Issue struct {
		id       Id
		mdMsg    MarkdownMsg
		docLinks []HttpLink
	}
)

// Id returns the catalog id.
func (i *Issue) Id() Id {
	return i.id
}

// MarkdownMsg returns the raw Markdown guidance.
func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

// DocLinks returns a copy of the documentation links.
func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

// Render renders the guidance with the named glamour style ("dark", "light", "notty", ...).
func (i *Issue) Render(stylePath string) (string, error) {
	var md strings.Builder
	md.WriteString(string(i.mdMsg))
	if len(i.docLinks) > 0 {
		md.WriteString("\n\n## See also\n")
		for _, link := range i.docLinks {
			md.WriteString("- " + string(link) + "\n")
		}
	}
	return render(md.String(), stylePath)
}

var (
	render = glamour.Render

	jmhDocs = HttpLink("https://github.com/openjdk/jmh")

	javaNotFoundIssue = &Issue{
		id: JavaNotFoundId,
		mdMsg: `
# No java launcher found!

Benchmarks run in a child JVM, and no usable ` + "`java`" + ` executable was found.

## Search order
1. ` + "`--java`" + ` flag or ` + "`java.binary`" + ` in the config file
2. ` + "`java.home`" + ` in the config file (` + "`JMHRUN_JAVA_HOME`" + `)
3. ` + "`JAVA_HOME`" + ` environment variable
4. ` + "`PATH`" + `

## Things you can try
- Point JAVA_HOME at a JDK:
~~~
$ export JAVA_HOME=/usr/lib/jvm/java-21
~~~`,
	}

	classpathEmptyIssue = &Issue{
		id: ClasspathEmptyId,
		mdMsg: `
# The benchmark classpath is empty!

None of the configured classpath entries matched a file.

## Things you can try
- Compile the benchmark source set first (for example ` + "`gradle benchmarkClasses`" + `)
- Check ` + "`project.classpath`" + ` in your config, or pass ` + "`--classpath`",
		docLinks: []HttpLink{jmhDocs},
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

The configuration file exists but could not be read or does not match the schema.

## Things you can try
- Show the defaults:
~~~
$ jmhrun config dump
~~~
- Recreate the file with ` + "`jmhrun config init`",
	}

	propertyFileInvalidIssue = &Issue{
		id: PropertyFileInvalidId,
		mdMsg: `
# Invalid property file!

Property files must end in ` + "`.properties`" + ` (Java syntax) or ` + "`.toml`" + `.

## Example
~~~
-wi=3
-i=5
-jvmArgs=-Xmx2g
~~~`,
	}

	benchmarkFailedIssue = &Issue{
		id: BenchmarkFailedId,
		mdMsg: `
# The benchmark harness failed!

The child JVM exited with a non-zero status.

## Things you can try
- Run with ` + "`-Phelp`" + ` to see the harness options
- Check the harness output file in the build directory`,
		docLinks: []HttpLink{jmhDocs},
	}

	benchmarkTimedOutIssue = &Issue{
		id: BenchmarkTimedOutId,
		mdMsg: `
# The benchmark run timed out!

The child JVM was stopped after ` + "`runner.timeout`" + ` elapsed.

## Things you can try
- Raise ` + "`--timeout`" + ` or remove it
- Reduce iterations with ` + "`-P-i=<n>`" + ` and ` + "`-P-wi=<n>`",
	}

	issues = map[Id]*Issue{
		javaNotFoundIssue.Id():        javaNotFoundIssue,
		classpathEmptyIssue.Id():      classpathEmptyIssue,
		configLoadFailedIssue.Id():    configLoadFailedIssue,
		propertyFileInvalidIssue.Id(): propertyFileInvalidIssue,
		benchmarkFailedIssue.Id():     benchmarkFailedIssue,
		benchmarkTimedOutIssue.Id():   benchmarkTimedOutIssue,
	}
)

// Values returns all catalog entries ordered by id.
func Values() []*Issue {
	out := make([]*Issue, 0, len(issues))
	for _, i := range issues {
		out = append(out, i)
	}
	slices.SortFunc(out, func(a, b *Issue) int { return int(a.id) - int(b.id) })
	return out
}

// Get returns the catalog entry for id, or nil.
func Get(id Id) *Issue {
	return issues[id]
}
