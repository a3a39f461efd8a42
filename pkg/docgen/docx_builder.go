package docgen

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/yockii/styleguide/pkg/logger"
	"github.com/yockii/styleguide/pkg/util"
)

// zipEpoch 所有压缩条目使用的修改时间，保证输出可逐字节复现
var zipEpoch = time.Date(1980, 1, 1, 0, 0, 0, 0, time.UTC)

// DocxBuilder 负责把 Document 序列化为 DOCX
type DocxBuilder struct {
	elementHandler *WordElementHandler
	created        time.Time
	title          string
	creator        string
}

// DocxOption 序列化选项
type DocxOption func(*DocxBuilder)

// WithCreated 写入 core.xml 的生成时间，零值使用固定时间
func WithCreated(t time.Time) DocxOption {
	return func(b *DocxBuilder) {
		b.created = t
	}
}

// WithTitle 文档标题
func WithTitle(title string) DocxOption {
	return func(b *DocxBuilder) {
		b.title = title
	}
}

// WithCreator 文档作者
func WithCreator(creator string) DocxOption {
	return func(b *DocxBuilder) {
		b.creator = creator
	}
}

// NewDocxBuilder 创建一个新的DOCX构建器
func NewDocxBuilder(opts ...DocxOption) *DocxBuilder {
	b := &DocxBuilder{
		elementHandler: NewWordElementHandler(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

type part struct {
	name    string
	content string
}

// Serialize 构建DOCX文档
// 相同 Document 与相同生成时间得到完全相同的字节；编码失败时不产生任何输出
func (b *DocxBuilder) Serialize(ctx context.Context, doc *Document) ([]byte, error) {
	if err := validateDocument(doc, b.title, b.creator); err != nil {
		return nil, err
	}

	documentXML := b.elementHandler.DocumentXML(doc)
	created := b.created
	if created.IsZero() {
		created = zipEpoch
	}

	// 固定顺序写入
	parts := []part{
		{"[Content_Types].xml", getContentTypesXML()},
		{"_rels/.rels", getRelsXML()},
		{"docProps/core.xml", getCoreXML(b.title, b.creator, documentID(documentXML), created)},
		{"docProps/app.xml", getAppXML(doc)},
		{"word/_rels/document.xml.rels", getWordRelsXML()},
		{"word/styles.xml", getStylesXML()},
		{"word/settings.xml", getSettingsXML()},
		{"word/document.xml", documentXML},
	}

	// 创建一个用于存储输出的缓冲区
	outputBuffer := new(bytes.Buffer)
	zipWriter := zip.NewWriter(outputBuffer)
	for _, p := range parts {
		if err := ctx.Err(); err != nil {
			zipWriter.Close()
			return nil, err
		}
		entry, err := zipWriter.CreateHeader(&zip.FileHeader{
			Name:     p.name,
			Method:   zip.Deflate,
			Modified: zipEpoch,
		})
		if err != nil {
			return nil, fmt.Errorf("create %s: %w", p.name, err)
		}
		if _, err := entry.Write([]byte(p.content)); err != nil {
			return nil, fmt.Errorf("write %s: %w", p.name, err)
		}
	}

	// 关闭ZIP writer
	if err := zipWriter.Close(); err != nil {
		return nil, fmt.Errorf("close archive: %w", err)
	}

	logger.Debug("docx serialized",
		logger.F("parts", len(parts)),
		logger.F("bytes", outputBuffer.Len()))
	return outputBuffer.Bytes(), nil
}

// WriteFile 序列化后交给存储写入 path，序列化失败时不会触碰文件
func (b *DocxBuilder) WriteFile(ctx context.Context, doc *Document, path string) ([]byte, error) {
	data, err := b.Serialize(ctx, doc)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := util.SaveFile(path, data); err != nil {
		return nil, err
	}
	logger.Info("docx written", logger.F("path", path), logger.F("bytes", len(data)))
	return data, nil
}

// documentID 由正文内容派生的稳定标识
func documentID(documentXML string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(documentXML)).URN()
}

// XML模板函数
func getContentTypesXML() string {
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
  <Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
  <Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>
  <Override PartName="/word/settings.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.settings+xml"/>
  <Override PartName="/docProps/core.xml" ContentType="application/vnd.openxmlformats-package.core-properties+xml"/>
  <Override PartName="/docProps/app.xml" ContentType="application/vnd.openxmlformats-officedocument.extended-properties+xml"/>
</Types>`
}

func getRelsXML() string {
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
  <Relationship Id="rId2" Type="http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties" Target="docProps/core.xml"/>
  <Relationship Id="rId3" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties" Target="docProps/app.xml"/>
</Relationships>`
}

func getWordRelsXML() string {
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>
  <Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/settings" Target="settings.xml"/>
</Relationships>`
}

func getCoreXML(title, creator, identifier string, created time.Time) string {
	stamp := created.UTC().Format(time.RFC3339)
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:dcterms="http://purl.org/dc/terms/" xmlns:dcmitype="http://purl.org/dc/dcmitype/" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">
  <dc:title>%s</dc:title>
  <dc:creator>%s</dc:creator>
  <dc:identifier>%s</dc:identifier>
  <dcterms:created xsi:type="dcterms:W3CDTF">%s</dcterms:created>
  <dcterms:modified xsi:type="dcterms:W3CDTF">%s</dcterms:modified>
</cp:coreProperties>`, escapeText(title), escapeText(creator), identifier, stamp, stamp)
}

func getAppXML(doc *Document) string {
	pages := 1
	for _, n := range doc.nodes {
		if n.Kind() == KindPageBreak {
			pages++
		}
	}
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Properties xmlns="http://schemas.openxmlformats.org/officeDocument/2006/extended-properties">
  <Application>styleguide</Application>
  <Pages>%d</Pages>
  <DocSecurity>0</DocSecurity>
</Properties>`, pages)
}

func getSettingsXML() string {
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:settings xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:defaultTabStop w:val="720"/>
  <w:characterSpacingControl w:val="doNotCompress"/>
</w:settings>`
}

func getStylesXML() string {
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:docDefaults>
    <w:rPrDefault>
      <w:rPr>
        <w:rFonts w:ascii="Arial" w:hAnsi="Arial" w:cs="Arial"/>
        <w:sz w:val="22"/>
        <w:szCs w:val="22"/>
      </w:rPr>
    </w:rPrDefault>
    <w:pPrDefault>
      <w:pPr>
        <w:spacing w:after="0" w:line="240" w:lineRule="auto"/>
      </w:pPr>
    </w:pPrDefault>
  </w:docDefaults>
  <w:style w:type="paragraph" w:default="1" w:styleId="Normal">
    <w:name w:val="Normal"/>
    <w:qFormat/>
  </w:style>
  <w:style w:type="paragraph" w:styleId="Heading1">
    <w:name w:val="heading 1"/>
    <w:basedOn w:val="Normal"/>
    <w:next w:val="Normal"/>
    <w:qFormat/>
    <w:pPr>
      <w:keepNext/>
      <w:outlineLvl w:val="0"/>
    </w:pPr>
  </w:style>
  <w:style w:type="paragraph" w:styleId="Heading2">
    <w:name w:val="heading 2"/>
    <w:basedOn w:val="Normal"/>
    <w:next w:val="Normal"/>
    <w:qFormat/>
    <w:pPr>
      <w:keepNext/>
      <w:outlineLvl w:val="1"/>
    </w:pPr>
  </w:style>
  <w:style w:type="paragraph" w:styleId="Code">
    <w:name w:val="Code"/>
    <w:basedOn w:val="Normal"/>
    <w:pPr>
      <w:keepLines/>
    </w:pPr>
    <w:rPr>
      <w:rFonts w:ascii="Courier New" w:hAnsi="Courier New" w:cs="Courier New"/>
    </w:rPr>
  </w:style>
  <w:style w:type="table" w:styleId="TableGrid">
    <w:name w:val="Table Grid"/>
    <w:uiPriority w:val="59"/>
    <w:pPr>
      <w:spacing w:after="0" w:line="240" w:lineRule="auto"/>
    </w:pPr>
    <w:tblPr>
      <w:tblBorders>
        <w:top w:val="single" w:sz="4" w:space="0" w:color="auto"/>
        <w:left w:val="single" w:sz="4" w:space="0" w:color="auto"/>
        <w:bottom w:val="single" w:sz="4" w:space="0" w:color="auto"/>
        <w:right w:val="single" w:sz="4" w:space="0" w:color="auto"/>
        <w:insideH w:val="single" w:sz="4" w:space="0" w:color="auto"/>
        <w:insideV w:val="single" w:sz="4" w:space="0" w:color="auto"/>
      </w:tblBorders>
    </w:tblPr>
  </w:style>
</w:styles>`
}
