package symbols

// Property is a CSS property name known to the evaluator.
type Property uint16

const (
	PropertyAlignContent Property = iota + 1
	PropertyAlignItems
	PropertyAlignSelf
	PropertyAll
	PropertyAnimation
	PropertyAnimationDelay
	PropertyAnimationDirection
	PropertyAnimationDuration
	PropertyAnimationFillMode
	PropertyAnimationIterationCount
	PropertyAnimationName
	PropertyAnimationPlayState
	PropertyAnimationTimingFunction
	PropertyBackfaceVisibility
	PropertyBackground
	PropertyBackgroundAttachment
	PropertyBackgroundBlendMode
	PropertyBackgroundClip
	PropertyBackgroundColor
	PropertyBackgroundImage
	PropertyBackgroundOrigin
	PropertyBackgroundPosition
	PropertyBackgroundRepeat
	PropertyBackgroundSize
	PropertyBorder
	PropertyBorderBottom
	PropertyBorderBottomColor
	PropertyBorderBottomLeftRadius
	PropertyBorderBottomRightRadius
	PropertyBorderBottomStyle
	PropertyBorderBottomWidth
	PropertyBorderCollapse
	PropertyBorderColor
	PropertyBorderImage
	PropertyBorderImageOutset
	PropertyBorderImageRepeat
	PropertyBorderImageSlice
	PropertyBorderImageSource
	PropertyBorderImageWidth
	PropertyBorderLeft
	PropertyBorderLeftColor
	PropertyBorderLeftStyle
	PropertyBorderLeftWidth
	PropertyBorderRadius
	PropertyBorderRight
	PropertyBorderRightColor
	PropertyBorderRightStyle
	PropertyBorderRightWidth
	PropertyBorderSpacing
	PropertyBorderStyle
	PropertyBorderTop
	PropertyBorderTopColor
	PropertyBorderTopLeftRadius
	PropertyBorderTopRightRadius
	PropertyBorderTopStyle
	PropertyBorderTopWidth
	PropertyBorderWidth
	PropertyBottom
	PropertyBoxDecorationBreak
	PropertyBoxShadow
	PropertyBoxSizing
	PropertyCaptionSide
	PropertyCaretColor
	PropertyClear
	PropertyClip
	PropertyColor
	PropertyColumnCount
	PropertyColumnFill
	PropertyColumnGap
	PropertyColumnRule
	PropertyColumnRuleColor
	PropertyColumnRuleStyle
	PropertyColumnRuleWidth
	PropertyColumnSpan
	PropertyColumnWidth
	PropertyColumns
	PropertyContent
	PropertyCounterIncrement
	PropertyCounterReset
	PropertyCursor
	PropertyDirection
	PropertyDisplay
	PropertyEmptyCells
	PropertyFilter
	PropertyFlex
	PropertyFlexBasis
	PropertyFlexDirection
	PropertyFlexFlow
	PropertyFlexGrow
	PropertyFlexShrink
	PropertyFlexWrap
	PropertyFloat
	PropertyFont
	PropertyFontFamily
	PropertyFontKerning
	PropertyFontSize
	PropertyFontSizeAdjust
	PropertyFontStretch
	PropertyFontStyle
	PropertyFontVariant
	PropertyFontWeight
	PropertyGrid
	PropertyGridArea
	PropertyGridAutoColumns
	PropertyGridAutoFlow
	PropertyGridAutoRows
	PropertyGridColumn
	PropertyGridColumnEnd
	PropertyGridColumnGap
	PropertyGridColumnStart
	PropertyGridGap
	PropertyGridRow
	PropertyGridRowEnd
	PropertyGridRowGap
	PropertyGridRowStart
	PropertyGridTemplate
	PropertyGridTemplateAreas
	PropertyGridTemplateColumns
	PropertyGridTemplateRows
	PropertyHangingPunctuation
	PropertyHeight
	PropertyHyphens
	PropertyIsolation
	PropertyJustifyContent
	PropertyLeft
	PropertyLetterSpacing
	PropertyLineHeight
	PropertyListStyle
	PropertyListStyleImage
	PropertyListStylePosition
	PropertyListStyleType
	PropertyMargin
	PropertyMarginBottom
	PropertyMarginLeft
	PropertyMarginRight
	PropertyMarginTop
	PropertyMaxHeight
	PropertyMaxWidth
	PropertyMinHeight
	PropertyMinWidth
	PropertyMixBlendMode
	PropertyObjectFit
	PropertyObjectPosition
	PropertyOpacity
	PropertyOrder
	PropertyOutline
	PropertyOutlineColor
	PropertyOutlineOffset
	PropertyOutlineStyle
	PropertyOutlineWidth
	PropertyOverflow
	PropertyOverflowX
	PropertyOverflowY
	PropertyPadding
	PropertyPaddingBottom
	PropertyPaddingLeft
	PropertyPaddingRight
	PropertyPaddingTop
	PropertyPageBreakAfter
	PropertyPageBreakBefore
	PropertyPageBreakInside
	PropertyPerspective
	PropertyPerspectiveOrigin
	PropertyPointerEvents
	PropertyPosition
	PropertyQuotes
	PropertyResize
	PropertyRight
	PropertyScrollBehavior
	PropertyTabSize
	PropertyTableLayout
	PropertyTextAlign
	PropertyTextAlignLast
	PropertyTextDecoration
	PropertyTextDecorationColor
	PropertyTextDecorationLine
	PropertyTextDecorationStyle
	PropertyTextIndent
	PropertyTextJustify
	PropertyTextOverflow
	PropertyTextShadow
	PropertyTextTransform
	PropertyTop
	PropertyTransform
	PropertyTransformOrigin
	PropertyTransformStyle
	PropertyTransition
	PropertyTransitionDelay
	PropertyTransitionDuration
	PropertyTransitionProperty
	PropertyTransitionTimingFunction
	PropertyUnicodeBidi
	PropertyUserSelect
	PropertyVerticalAlign
	PropertyVisibility
	PropertyWhiteSpace
	PropertyWidth
	PropertyWordBreak
	PropertyWordSpacing
	PropertyWordWrap
	PropertyWritingMode
	PropertyZIndex
)

var propertyNames = [...]string{
	PropertyAlignContent:             "align-content",
	PropertyAlignItems:               "align-items",
	PropertyAlignSelf:                "align-self",
	PropertyAll:                      "all",
	PropertyAnimation:                "animation",
	PropertyAnimationDelay:           "animation-delay",
	PropertyAnimationDirection:       "animation-direction",
	PropertyAnimationDuration:        "animation-duration",
	PropertyAnimationFillMode:        "animation-fill-mode",
	PropertyAnimationIterationCount:  "animation-iteration-count",
	PropertyAnimationName:            "animation-name",
	PropertyAnimationPlayState:       "animation-play-state",
	PropertyAnimationTimingFunction:  "animation-timing-function",
	PropertyBackfaceVisibility:       "backface-visibility",
	PropertyBackground:               "background",
	PropertyBackgroundAttachment:     "background-attachment",
	PropertyBackgroundBlendMode:      "background-blend-mode",
	PropertyBackgroundClip:           "background-clip",
	PropertyBackgroundColor:          "background-color",
	PropertyBackgroundImage:          "background-image",
	PropertyBackgroundOrigin:         "background-origin",
	PropertyBackgroundPosition:       "background-position",
	PropertyBackgroundRepeat:         "background-repeat",
	PropertyBackgroundSize:           "background-size",
	PropertyBorder:                   "border",
	PropertyBorderBottom:             "border-bottom",
	PropertyBorderBottomColor:        "border-bottom-color",
	PropertyBorderBottomLeftRadius:   "border-bottom-left-radius",
	PropertyBorderBottomRightRadius:  "border-bottom-right-radius",
	PropertyBorderBottomStyle:        "border-bottom-style",
	PropertyBorderBottomWidth:        "border-bottom-width",
	PropertyBorderCollapse:           "border-collapse",
	PropertyBorderColor:              "border-color",
	PropertyBorderImage:              "border-image",
	PropertyBorderImageOutset:        "border-image-outset",
	PropertyBorderImageRepeat:        "border-image-repeat",
	PropertyBorderImageSlice:         "border-image-slice",
	PropertyBorderImageSource:        "border-image-source",
	PropertyBorderImageWidth:         "border-image-width",
	PropertyBorderLeft:               "border-left",
	PropertyBorderLeftColor:          "border-left-color",
	PropertyBorderLeftStyle:          "border-left-style",
	PropertyBorderLeftWidth:          "border-left-width",
	PropertyBorderRadius:             "border-radius",
	PropertyBorderRight:              "border-right",
	PropertyBorderRightColor:         "border-right-color",
	PropertyBorderRightStyle:         "border-right-style",
	PropertyBorderRightWidth:         "border-right-width",
	PropertyBorderSpacing:            "border-spacing",
	PropertyBorderStyle:              "border-style",
	PropertyBorderTop:                "border-top",
	PropertyBorderTopColor:           "border-top-color",
	PropertyBorderTopLeftRadius:      "border-top-left-radius",
	PropertyBorderTopRightRadius:     "border-top-right-radius",
	PropertyBorderTopStyle:           "border-top-style",
	PropertyBorderTopWidth:           "border-top-width",
	PropertyBorderWidth:              "border-width",
	PropertyBottom:                   "bottom",
	PropertyBoxDecorationBreak:       "box-decoration-break",
	PropertyBoxShadow:                "box-shadow",
	PropertyBoxSizing:                "box-sizing",
	PropertyCaptionSide:              "caption-side",
	PropertyCaretColor:               "caret-color",
	PropertyClear:                    "clear",
	PropertyClip:                     "clip",
	PropertyColor:                    "color",
	PropertyColumnCount:              "column-count",
	PropertyColumnFill:               "column-fill",
	PropertyColumnGap:                "column-gap",
	PropertyColumnRule:               "column-rule",
	PropertyColumnRuleColor:          "column-rule-color",
	PropertyColumnRuleStyle:          "column-rule-style",
	PropertyColumnRuleWidth:          "column-rule-width",
	PropertyColumnSpan:               "column-span",
	PropertyColumnWidth:              "column-width",
	PropertyColumns:                  "columns",
	PropertyContent:                  "content",
	PropertyCounterIncrement:         "counter-increment",
	PropertyCounterReset:             "counter-reset",
	PropertyCursor:                   "cursor",
	PropertyDirection:                "direction",
	PropertyDisplay:                  "display",
	PropertyEmptyCells:               "empty-cells",
	PropertyFilter:                   "filter",
	PropertyFlex:                     "flex",
	PropertyFlexBasis:                "flex-basis",
	PropertyFlexDirection:            "flex-direction",
	PropertyFlexFlow:                 "flex-flow",
	PropertyFlexGrow:                 "flex-grow",
	PropertyFlexShrink:               "flex-shrink",
	PropertyFlexWrap:                 "flex-wrap",
	PropertyFloat:                    "float",
	PropertyFont:                     "font",
	PropertyFontFamily:               "font-family",
	PropertyFontKerning:              "font-kerning",
	PropertyFontSize:                 "font-size",
	PropertyFontSizeAdjust:           "font-size-adjust",
	PropertyFontStretch:              "font-stretch",
	PropertyFontStyle:                "font-style",
	PropertyFontVariant:              "font-variant",
	PropertyFontWeight:               "font-weight",
	PropertyGrid:                     "grid",
	PropertyGridArea:                 "grid-area",
	PropertyGridAutoColumns:          "grid-auto-columns",
	PropertyGridAutoFlow:             "grid-auto-flow",
	PropertyGridAutoRows:             "grid-auto-rows",
	PropertyGridColumn:               "grid-column",
	PropertyGridColumnEnd:            "grid-column-end",
	PropertyGridColumnGap:            "grid-column-gap",
	PropertyGridColumnStart:          "grid-column-start",
	PropertyGridGap:                  "grid-gap",
	PropertyGridRow:                  "grid-row",
	PropertyGridRowEnd:               "grid-row-end",
	PropertyGridRowGap:               "grid-row-gap",
	PropertyGridRowStart:             "grid-row-start",
	PropertyGridTemplate:             "grid-template",
	PropertyGridTemplateAreas:        "grid-template-areas",
	PropertyGridTemplateColumns:      "grid-template-columns",
	PropertyGridTemplateRows:         "grid-template-rows",
	PropertyHangingPunctuation:       "hanging-punctuation",
	PropertyHeight:                   "height",
	PropertyHyphens:                  "hyphens",
	PropertyIsolation:                "isolation",
	PropertyJustifyContent:           "justify-content",
	PropertyLeft:                     "left",
	PropertyLetterSpacing:            "letter-spacing",
	PropertyLineHeight:               "line-height",
	PropertyListStyle:                "list-style",
	PropertyListStyleImage:           "list-style-image",
	PropertyListStylePosition:        "list-style-position",
	PropertyListStyleType:            "list-style-type",
	PropertyMargin:                   "margin",
	PropertyMarginBottom:             "margin-bottom",
	PropertyMarginLeft:               "margin-left",
	PropertyMarginRight:              "margin-right",
	PropertyMarginTop:                "margin-top",
	PropertyMaxHeight:                "max-height",
	PropertyMaxWidth:                 "max-width",
	PropertyMinHeight:                "min-height",
	PropertyMinWidth:                 "min-width",
	PropertyMixBlendMode:             "mix-blend-mode",
	PropertyObjectFit:                "object-fit",
	PropertyObjectPosition:           "object-position",
	PropertyOpacity:                  "opacity",
	PropertyOrder:                    "order",
	PropertyOutline:                  "outline",
	PropertyOutlineColor:             "outline-color",
	PropertyOutlineOffset:            "outline-offset",
	PropertyOutlineStyle:             "outline-style",
	PropertyOutlineWidth:             "outline-width",
	PropertyOverflow:                 "overflow",
	PropertyOverflowX:                "overflow-x",
	PropertyOverflowY:                "overflow-y",
	PropertyPadding:                  "padding",
	PropertyPaddingBottom:            "padding-bottom",
	PropertyPaddingLeft:              "padding-left",
	PropertyPaddingRight:             "padding-right",
	PropertyPaddingTop:               "padding-top",
	PropertyPageBreakAfter:           "page-break-after",
	PropertyPageBreakBefore:          "page-break-before",
	PropertyPageBreakInside:          "page-break-inside",
	PropertyPerspective:              "perspective",
	PropertyPerspectiveOrigin:        "perspective-origin",
	PropertyPointerEvents:            "pointer-events",
	PropertyPosition:                 "position",
	PropertyQuotes:                   "quotes",
	PropertyResize:                   "resize",
	PropertyRight:                    "right",
	PropertyScrollBehavior:           "scroll-behavior",
	PropertyTabSize:                  "tab-size",
	PropertyTableLayout:              "table-layout",
	PropertyTextAlign:                "text-align",
	PropertyTextAlignLast:            "text-align-last",
	PropertyTextDecoration:           "text-decoration",
	PropertyTextDecorationColor:      "text-decoration-color",
	PropertyTextDecorationLine:       "text-decoration-line",
	PropertyTextDecorationStyle:      "text-decoration-style",
	PropertyTextIndent:               "text-indent",
	PropertyTextJustify:              "text-justify",
	PropertyTextOverflow:             "text-overflow",
	PropertyTextShadow:               "text-shadow",
	PropertyTextTransform:            "text-transform",
	PropertyTop:                      "top",
	PropertyTransform:                "transform",
	PropertyTransformOrigin:          "transform-origin",
	PropertyTransformStyle:           "transform-style",
	PropertyTransition:               "transition",
	PropertyTransitionDelay:          "transition-delay",
	PropertyTransitionDuration:       "transition-duration",
	PropertyTransitionProperty:       "transition-property",
	PropertyTransitionTimingFunction: "transition-timing-function",
	PropertyUnicodeBidi:              "unicode-bidi",
	PropertyUserSelect:               "user-select",
	PropertyVerticalAlign:            "vertical-align",
	PropertyVisibility:               "visibility",
	PropertyWhiteSpace:               "white-space",
	PropertyWidth:                    "width",
	PropertyWordBreak:                "word-break",
	PropertyWordSpacing:              "word-spacing",
	PropertyWordWrap:                 "word-wrap",
	PropertyWritingMode:              "writing-mode",
	PropertyZIndex:                   "z-index",
}
