package existdb

import (
	"github.com/beevik/etree"

	"github.com/telota/bbaw-dse-mcp/internal/core/domain"
)

// parseCollectionListing reads the exist:result collection listing returned
// for a GET on a collection path. Tags are matched by local name because
// the exist prefix is not guaranteed.
func parseCollectionListing(path, body string) (*domain.CollectionContents, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(body); err != nil {
		return nil, domain.NewParsePayloadError("list collection", body, err)
	}

	contents := &domain.CollectionContents{Path: path}
	root := doc.Root()
	if root == nil {
		return contents, nil
	}

	var walk func(el *etree.Element, depth int)
	walk = func(el *etree.Element, depth int) {
		for _, child := range el.ChildElements() {
			switch child.Tag {
			case "collection":
				// depth 0 is the listed collection itself.
				if depth > 0 {
					if name := child.SelectAttrValue("name", ""); name != "" {
						contents.Subcollections = append(contents.Subcollections, name)
					}
					continue
				}
				walk(child, depth+1)
			case "resource":
				if name := child.SelectAttrValue("name", ""); name != "" {
					contents.Files = append(contents.Files, name)
				}
			default:
				walk(child, depth)
			}
		}
	}
	if root.Tag == "collection" {
		walk(root, 1)
	} else {
		walk(root, 0)
	}
	return contents, nil
}
