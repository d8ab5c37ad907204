package existdb

import (
	"fmt"
	"strings"

	"github.com/telota/bbaw-dse-mcp/internal/core/domain"
)

const teiProlog = `declare namespace tei = "http://www.tei-c.org/ns/1.0";
declare namespace exist = "http://exist.sourceforge.net/NS/exist";
`

// luceneSpecials lists the characters the Lucene query parser treats as
// operators. They are escaped so user terms are matched literally.
var luceneSpecials = []string{
	"\\", "+", "-", "&&", "||", "!", "(", ")", "{", "}", "[", "]", "^", "\"", "~", "*", "?", ":", "/",
}

// EscapeStringLiteral doubles single quotes so a value can be embedded in
// a single-quoted XQuery string literal.
func EscapeStringLiteral(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

// EscapeLuceneTerm escapes Lucene query syntax inside a search term.
func EscapeLuceneTerm(term string) string {
	escaped := term
	for _, special := range luceneSpecials {
		escaped = strings.ReplaceAll(escaped, special, "\\"+special)
	}
	return escaped
}

// QuerySet builds XQuery expressions against one edition's database layout.
type QuerySet struct {
	DataPath  string
	CachePath string
}

func NewQuerySet(dataPath, cachePath string) *QuerySet {
	return &QuerySet{
		DataPath:  strings.TrimRight(dataPath, "/"),
		CachePath: strings.TrimRight(cachePath, "/"),
	}
}

// FullTextSearch returns a query producing one <result> element per
// matching document, each carrying KWIC expansions of the matches.
// Hits are scored, sorted and limited before KWIC processing.
func (q *QuerySet) FullTextSearch(req domain.SearchRequest) string {
	lucene := q.luceneExpression(req.Terms, req.Mode)
	fieldQuery := "fulltext-main:" + lucene
	if req.IncludeCommentary {
		fieldQuery = fmt.Sprintf("(fulltext-main:%s OR fulltext-commentary:%s)", lucene, lucene)
	}

	var facets []string
	if len(req.DocTypes) > 0 {
		facets = append(facets, facetCondition("doc-type", req.DocTypes))
	}
	if len(req.Years) > 0 {
		facets = append(facets, facetCondition("year", req.Years))
	}
	facetMap := ""
	if len(facets) > 0 {
		facetMap = fmt.Sprintf(`, "facets": map { %s }`, strings.Join(facets, ", "))
	}

	limit := req.Limit
	if limit <= 0 {
		limit = 20
	}

	var dateConditions []string
	if req.DateFrom != "" {
		dateConditions = append(dateConditions, fmt.Sprintf("$date >= '%s'", EscapeStringLiteral(req.DateFrom)))
	}
	if req.DateTo != "" {
		dateConditions = append(dateConditions, fmt.Sprintf("$date <= '%s'", EscapeStringLiteral(req.DateTo)))
	}
	whereClause := ""
	dateBinding := ""
	if len(dateConditions) > 0 {
		dateBinding = "\n  let $date := ft:field($h, 'date')"
		whereClause = "\n  where " + strings.Join(dateConditions, " and ")
	}

	return teiProlog + fmt.Sprintf(`import module namespace kwic = "http://exist-db.org/xquery/kwic";
let $options := map {
  "fields": ("id", "title", "doc-type", "year", "date")%s
}
let $hits := collection('%s')//tei:TEI[ft:query(., '%s', $options)]
let $sorted := for $h in $hits%s%s
  order by ft:score($h) descending
  return $h
for $hit in subsequence($sorted, 1, %d)
let $score := ft:score($hit)
return
  <result>
    <id>{ft:field($hit, 'id')}</id>
    <title>{ft:field($hit, 'title')}</title>
    <type>{ft:field($hit, 'doc-type')}</type>
    <date>{ft:field($hit, 'date')}</date>
    <score>{$score}</score>
    <snippets>{kwic:summarize($hit, <config width="120" table="no"/>)}</snippets>
  </result>`,
		facetMap, EscapeStringLiteral(q.DataPath), fieldQuery, dateBinding, whereClause, limit)
}

func facetCondition(field string, values []string) string {
	quoted := make([]string, 0, len(values))
	for _, v := range values {
		quoted = append(quoted, fmt.Sprintf("\"%s\"", EscapeStringLiteral(v)))
	}
	return fmt.Sprintf(`"%s": (%s)`, field, strings.Join(quoted, ", "))
}

func (q *QuerySet) luceneExpression(terms []string, mode domain.SearchMode) string {
	operator := " OR "
	if mode == domain.SearchAll {
		operator = " AND "
	}
	escaped := make([]string, 0, len(terms))
	for _, t := range terms {
		escaped = append(escaped, EscapeLuceneTerm(EscapeStringLiteral(t)))
	}
	if len(escaped) == 1 {
		return escaped[0]
	}
	return "(" + strings.Join(escaped, operator) + ")"
}

// PassagesMatching returns a query selecting paragraphs of one document
// that match a term, with KWIC context.
func (q *QuerySet) PassagesMatching(documentID, term string, maxPassages, contextSize int) string {
	if maxPassages <= 0 {
		maxPassages = 10
	}
	if contextSize <= 0 {
		contextSize = 120
	}
	return teiProlog + fmt.Sprintf(`import module namespace kwic = "http://exist-db.org/xquery/kwic";
let $doc := collection('%s')//tei:TEI[@xml:id = '%s']
let $hits := $doc//tei:body//tei:p[ft:query(., '%s')]
for $hit at $pos in subsequence($hits, 1, %d)
let $div := $hit/ancestor::tei:div[@n][1]
let $pb := $hit/preceding::tei:pb[@n][1]
let $para_pos := count($hit/preceding::tei:p) + 1
return
  <passage>
    <position>{$pos}</position>
    <div_n>{$div/@n/string()}</div_n>
    <page_n>{$pb/@n/string()}</page_n>
    <text>{kwic:summarize($hit, <config width="%d" table="no"/>)}</text>
    <para_num>{$para_pos}</para_num>
  </passage>`,
		EscapeStringLiteral(q.DataPath), EscapeStringLiteral(documentID),
		EscapeLuceneTerm(EscapeStringLiteral(term)), maxPassages, contextSize)
}

// StructuralPassages returns a query selecting a document's paragraphs in
// order, without full-text matching.
func (q *QuerySet) StructuralPassages(documentID string, maxPassages, contextSize int) string {
	if maxPassages <= 0 {
		maxPassages = 10
	}
	if contextSize <= 0 {
		contextSize = 500
	}
	return teiProlog + fmt.Sprintf(`let $doc := collection('%s')//tei:TEI[@xml:id = '%s']
let $passages := $doc//tei:body//tei:p
for $p at $pos in subsequence($passages, 1, %d)
let $div := $p/ancestor::tei:div[@n][1]
let $pb := $p/preceding::tei:pb[@n][1]
let $text := normalize-space(string-join($p//text(), ' '))
let $para_pos := count($p/preceding::tei:p) + 1
return
  <passage>
    <position>{$pos}</position>
    <div_n>{$div/@n/string()}</div_n>
    <page_n>{$pb/@n/string()}</page_n>
    <text>{substring($text, 1, %d)}</text>
    <para_num>{$para_pos}</para_num>
  </passage>`,
		EscapeStringLiteral(q.DataPath), EscapeStringLiteral(documentID),
		maxPassages, contextSize)
}

// DocumentByID returns a query fetching one full TEI document.
func (q *QuerySet) DocumentByID(id string) string {
	return teiProlog + fmt.Sprintf(
		"collection('%s')//tei:TEI[@xml:id = '%s']",
		EscapeStringLiteral(q.DataPath), EscapeStringLiteral(id))
}

// DocTypeForID returns a query resolving only the document's type marker,
// so callers can dispatch before fetching the full body.
func (q *QuerySet) DocTypeForID(id string) string {
	return teiProlog + fmt.Sprintf(
		"string((collection('%s')//tei:TEI[@xml:id = '%s'])[1]/tei:text/@n)",
		EscapeStringLiteral(q.DataPath), EscapeStringLiteral(id))
}

// RegisterEntryByID returns a query fetching one register entry
// (person, place or work) by xml:id.
func (q *QuerySet) RegisterEntryByID(id string) string {
	escID := EscapeStringLiteral(id)
	return teiProlog + fmt.Sprintf(
		"(collection('%s')//tei:person[@xml:id = '%s'], collection('%s')//tei:place[@xml:id = '%s'], collection('%s')//tei:bibl[@xml:id = '%s'])[1]",
		EscapeStringLiteral(q.DataPath), escID,
		EscapeStringLiteral(q.DataPath), escID,
		EscapeStringLiteral(q.DataPath), escID)
}

// RegisterEntryKind returns a query resolving the element kind of a
// register entry, so callers can dispatch parsing without inspecting
// the payload shape.
func (q *QuerySet) RegisterEntryKind(id string) string {
	escID := EscapeStringLiteral(id)
	return teiProlog + fmt.Sprintf(
		"local-name((collection('%s')//tei:person[@xml:id = '%s'], collection('%s')//tei:place[@xml:id = '%s'], collection('%s')//tei:bibl[@xml:id = '%s'])[1])",
		EscapeStringLiteral(q.DataPath), escID,
		EscapeStringLiteral(q.DataPath), escID,
		EscapeStringLiteral(q.DataPath), escID)
}

// RegisterSearch returns a query matching register entries by name.
func (q *QuerySet) RegisterSearch(term string, kind domain.RegisterKind) string {
	escTerm := EscapeLuceneTerm(EscapeStringLiteral(term))
	selector := registerSelector(kind)
	return teiProlog + fmt.Sprintf(`for $entry in collection('%s')//%s[ft:query(., '%s')]
return
  <hit id="{$entry/@xml:id}" kind="{local-name($entry)}">
    <name>{normalize-space(($entry/tei:persName[1], $entry/tei:placeName[1], $entry/tei:title[1])[1])}</name>
  </hit>`,
		EscapeStringLiteral(q.DataPath), selector, escTerm)
}

func registerSelector(kind domain.RegisterKind) string {
	switch kind {
	case domain.KindPerson:
		return "tei:person"
	case domain.KindPlace:
		return "tei:place"
	case domain.KindWork:
		return "tei:bibl"
	default:
		return "(tei:person | tei:place | tei:bibl)"
	}
}

// MentionsInCollection returns a query finding documents in a collection
// that reference a register id, distinguishing body text from editorial
// comment context.
func (q *QuerySet) MentionsInCollection(collectionPath, registerID string) string {
	return teiProlog + fmt.Sprintf(`for $doc in collection('%s')//tei:TEI[.//tei:text//*[@ref = '%s' or @key = '%s']]
return
  <mention id="{$doc/@xml:id}">
    <title>{$doc//tei:titleStmt/tei:title[1]/text()}</title>
    <date>{string(($doc//tei:correspAction[@type = 'sent']/tei:date/@when, $doc//tei:text//tei:date/@when)[1])}</date>
    <intext>{exists($doc/tei:text//*[(@ref = '%s' or @key = '%s') and not(ancestor::tei:note) and not(ancestor::tei:seg[@type = 'comment'])])}</intext>
  </mention>`,
		EscapeStringLiteral(collectionPath),
		EscapeStringLiteral(registerID), EscapeStringLiteral(registerID),
		EscapeStringLiteral(registerID), EscapeStringLiteral(registerID))
}

// ChronologyRange returns a query selecting chronology items whose exact
// or fuzzy date span overlaps [dateFrom, dateTo]. The bounds arrive as
// full ISO dates; store-side dates may be year or year-month precision,
// so they are padded to their widest span before the lexicographic
// comparison, mirroring domain.PadDateLower and domain.PadDateUpper.
func (q *QuerySet) ChronologyRange(dateFrom, dateTo string) string {
	escFrom := EscapeStringLiteral(dateFrom)
	escTo := EscapeStringLiteral(dateTo)
	return teiProlog + fmt.Sprintf(`declare function local:lower($d as xs:string) as xs:string {
  if (string-length($d) = 4) then concat($d, '-01-01')
  else if (string-length($d) = 7) then concat($d, '-01')
  else $d
};
declare function local:upper($d as xs:string) as xs:string {
  if (string-length($d) = 4) then concat($d, '-12-31')
  else if (string-length($d) = 7) then concat($d, '-31')
  else $d
};
for $item in collection('%s/Chronologie')//tei:item
let $date := $item//tei:date
let $lo := string(($date/@when, $date/@notBefore)[1])
let $hi := string(($date/@when, $date/@notAfter, $date/@notBefore)[1])
where $lo != '' and local:lower($lo) <= '%s' and local:upper($hi) >= '%s'
order by local:lower($lo)
return $item`,
		EscapeStringLiteral(q.DataPath), escTo, escFrom)
}

// DiaryByDate returns a query fetching the calendar page covering a date.
func (q *QuerySet) DiaryByDate(date string) string {
	return teiProlog + fmt.Sprintf(
		"collection('%s/Tageskalender')//tei:div[@type = 'tag'][.//tei:date[@type = 'tageseintrag'][@when = '%s']]",
		EscapeStringLiteral(q.DataPath), EscapeStringLiteral(date))
}

// CorrespondentCounts returns a query aggregating letters per correspondent
// for one correspondence direction ("sent" or "received"). A non-empty
// year restricts the aggregation to letters sent in that year.
func (q *QuerySet) CorrespondentCounts(direction, year string) string {
	yearFilter := ""
	if year != "" {
		yearFilter = fmt.Sprintf("[tei:date[starts-with(@when, '%s')]]", EscapeStringLiteral(year))
	}
	return teiProlog + fmt.Sprintf(`for $ref in collection('%s')//tei:correspAction[@type = '%s']%s/tei:persName/@ref
group by $key := string($ref)
order by count($ref) descending
return <correspondent ref="{$key}" count="{count($ref)}"/>`,
		EscapeStringLiteral(q.DataPath), EscapeStringLiteral(direction), yearFilter)
}

// ChronologyYearPath is the database path of the chronology document
// for one year.
func (q *QuerySet) ChronologyYearPath(year int) string {
	return fmt.Sprintf("%s/Chronologie/%d.xml", q.DataPath, year)
}

// LetterSnapshotPath is the database path of the pre-built letter
// metadata snapshot.
func (q *QuerySet) LetterSnapshotPath() string {
	return q.CachePath + "/letters/register/letters-for-register.json"
}
