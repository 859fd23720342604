package words

// Pseudo-fonts map ASCII (and optionally Greek) text onto the Unicode
// mathematical alphanumeric symbol blocks. A handful of letters predate the
// blocks and live in Letterlike Symbols instead (ℎ, ℬ, ℭ, ℕ, ...); the
// tables below carry those exceptions already.

// Font maps individual characters to their equivalents in a pseudo-font.
type Font map[rune]rune

// makeFont zips plain alphabets with their styled counterparts.
// Empty styled strings are skipped, as not every font covers digits or Greek.
func makeFont(pairs ...[2]string) Font {
	f := make(Font)
	for _, p := range pairs {
		if p[1] == "" {
			continue
		}
		styled := []rune(p[1])
		for i, plain := range []rune(p[0]) {
			if i >= len(styled) {
				break
			}
			f[plain] = styled[i]
		}
	}
	return f
}

// Convert returns the given character in this font.
// Characters the font does not cover are returned unchanged.
func (f Font) Convert(r rune) rune {
	if styled, ok := f[r]; ok {
		return styled
	}
	return r
}

// Apply returns the given text in this font.
func (f Font) Apply(text string) string {
	out := make([]rune, 0, len(text))
	for _, r := range text {
		out = append(out, f.Convert(r))
	}
	return string(out)
}

// Styled alphabets, in the same order as the plain constants they shadow.
const (
	serifBoldUpper = "𝐀𝐁𝐂𝐃𝐄𝐅𝐆𝐇𝐈𝐉𝐊𝐋𝐌𝐍𝐎𝐏𝐐𝐑𝐒𝐓𝐔𝐕𝐖𝐗𝐘𝐙"
	serifBoldLower = "𝐚𝐛𝐜𝐝𝐞𝐟𝐠𝐡𝐢𝐣𝐤𝐥𝐦𝐧𝐨𝐩𝐪𝐫𝐬𝐭𝐮𝐯𝐰𝐱𝐲𝐳"
	serifBoldDigits = "𝟎𝟏𝟐𝟑𝟒𝟓𝟔𝟕𝟖𝟗"
	serifBoldGreekUpper = "𝚨𝚩𝚪𝚫𝚬𝚭𝚮𝚯𝚰𝚱𝚲𝚳𝚴𝚵𝚶𝚷𝚸𝚹𝚺𝚻𝚼𝚽𝚾𝚿𝛀𝛁"
	serifBoldGreekLower = "𝛂𝛃𝛄𝛅𝛆𝛇𝛈𝛉𝛊𝛋𝛌𝛍𝛎𝛏𝛐𝛑𝛒𝛓𝛔𝛕𝛖𝛗𝛘𝛙𝛚𝛛𝛜𝛝𝛞𝛟𝛠𝛡"
	serifItalicUpper = "𝐴𝐵𝐶𝐷𝐸𝐹𝐺𝐻𝐼𝐽𝐾𝐿𝑀𝑁𝑂𝑃𝑄𝑅𝑆𝑇𝑈𝑉𝑊𝑋𝑌𝑍"
	serifItalicLower = "𝑎𝑏𝑐𝑑𝑒𝑓𝑔ℎ𝑖𝑗𝑘𝑙𝑚𝑛𝑜𝑝𝑞𝑟𝑠𝑡𝑢𝑣𝑤𝑥𝑦𝑧"
	serifItalicGreekUpper = "𝛢𝛣𝛤𝛥𝛦𝛧𝛨𝛩𝛪𝛫𝛬𝛭𝛮𝛯𝛰𝛱𝛲𝛳𝛴𝛵𝛶𝛷𝛸𝛹𝛺𝛻"
	serifItalicGreekLower = "𝛼𝛽𝛾𝛿𝜀𝜁𝜂𝜃𝜄𝜅𝜆𝜇𝜈𝜉𝜊𝜋𝜌𝜍𝜎𝜏𝜐𝜑𝜒𝜓𝜔𝜕𝜖𝜗𝜘𝜙𝜚𝜛"
	serifBoldItalicUpper = "𝑨𝑩𝑪𝑫𝑬𝑭𝑮𝑯𝑰𝑱𝑲𝑳𝑴𝑵𝑶𝑷𝑸𝑹𝑺𝑻𝑼𝑽𝑾𝑿𝒀𝒁"
	serifBoldItalicLower = "𝒂𝒃𝒄𝒅𝒆𝒇𝒈𝒉𝒊𝒋𝒌𝒍𝒎𝒏𝒐𝒑𝒒𝒓𝒔𝒕𝒖𝒗𝒘𝒙𝒚𝒛"
	serifBoldItalicGreekUpper = "𝜜𝜝𝜞𝜟𝜠𝜡𝜢𝜣𝜤𝜥𝜦𝜧𝜨𝜩𝜪𝜫𝜬𝜭𝜮𝜯𝜰𝜱𝜲𝜳𝜴𝜵"
	serifBoldItalicGreekLower = "𝜶𝜷𝜸𝜹𝜺𝜻𝜼𝜽𝜾𝜿𝝀𝝁𝝂𝝃𝝄𝝅𝝆𝝇𝝈𝝉𝝊𝝋𝝌𝝍𝝎𝝏𝝐𝝑𝝒𝝓𝝔𝝕"
	sansUpper = "𝖠𝖡𝖢𝖣𝖤𝖥𝖦𝖧𝖨𝖩𝖪𝖫𝖬𝖭𝖮𝖯𝖰𝖱𝖲𝖳𝖴𝖵𝖶𝖷𝖸𝖹"
	sansLower = "𝖺𝖻𝖼𝖽𝖾𝖿𝗀𝗁𝗂𝗃𝗄𝗅𝗆𝗇𝗈𝗉𝗊𝗋𝗌𝗍𝗎𝗏𝗐𝗑𝗒𝗓"
	sansDigits = "𝟢𝟣𝟤𝟥𝟦𝟧𝟨𝟩𝟪𝟫"
	sansBoldUpper = "𝗔𝗕𝗖𝗗𝗘𝗙𝗚𝗛𝗜𝗝𝗞𝗟𝗠𝗡𝗢𝗣𝗤𝗥𝗦𝗧𝗨𝗩𝗪𝗫𝗬𝗭"
	sansBoldLower = "𝗮𝗯𝗰𝗱𝗲𝗳𝗴𝗵𝗶𝗷𝗸𝗹𝗺𝗻𝗼𝗽𝗾𝗿𝘀𝘁𝘂𝘃𝘄𝘅𝘆𝘇"
	sansBoldDigits = "𝟬𝟭𝟮𝟯𝟰𝟱𝟲𝟳𝟴𝟵"
	sansItalicUpper = "𝘈𝘉𝘊𝘋𝘌𝘍𝘎𝘏𝘐𝘑𝘒𝘓𝘔𝘕𝘖𝘗𝘘𝘙𝘚𝘛𝘜𝘝𝘞𝘟𝘠𝘡"
	sansItalicLower = "𝘢𝘣𝘤𝘥𝘦𝘧𝘨𝘩𝘪𝘫𝘬𝘭𝘮𝘯𝘰𝘱𝘲𝘳𝘴𝘵𝘶𝘷𝘸𝘹𝘺𝘻"
	sansBoldItalicUpper = "𝘼𝘽𝘾𝘿𝙀𝙁𝙂𝙃𝙄𝙅𝙆𝙇𝙈𝙉𝙊𝙋𝙌𝙍𝙎𝙏𝙐𝙑𝙒𝙓𝙔𝙕"
	sansBoldItalicLower = "𝙖𝙗𝙘𝙙𝙚𝙛𝙜𝙝𝙞𝙟𝙠𝙡𝙢𝙣𝙤𝙥𝙦𝙧𝙨𝙩𝙪𝙫𝙬𝙭𝙮𝙯"
	sansBoldItalicGreekUpper = "𝞐𝞑𝞒𝞓𝞔𝞕𝞖𝞗𝞘𝞙𝞚𝞛𝞜𝞝𝞞𝞟𝞠𝞡𝞢𝞣𝞤𝞥𝞦𝞧𝞨𝞩"
	sansBoldItalicGreekLower = "𝞪𝞫𝞬𝞭𝞮𝞯𝞰𝞱𝞲𝞳𝞴𝞵𝞶𝞷𝞸𝞹𝞺𝞻𝞼𝞽𝞾𝞿𝟀𝟁𝟂𝟃𝟄𝟅𝟆𝟇𝟈𝟉"
	scriptUpper = "𝒜ℬ𝒞𝒟ℰℱ𝒢ℋℐ𝒥𝒦ℒℳ𝒩𝒪𝒫𝒬ℛ𝒮𝒯𝒰𝒱𝒲𝒳𝒴𝒵"
	scriptLower = "𝒶𝒷𝒸𝒹ℯ𝒻ℊ𝒽𝒾𝒿𝓀𝓁𝓂𝓃ℴ𝓅𝓆𝓇𝓈𝓉𝓊𝓋𝓌𝓍𝓎𝓏"
	frakturUpper = "𝔄𝔅ℭ𝔇𝔈𝔉𝔊ℌℑ𝔍𝔎𝔏𝔐𝔑𝔒𝔓𝔔ℜ𝔖𝔗𝔘𝔙𝔚𝔛𝔜ℨ"
	frakturLower = "𝔞𝔟𝔠𝔡𝔢𝔣𝔤𝔥𝔦𝔧𝔨𝔩𝔪𝔫𝔬𝔭𝔮𝔯𝔰𝔱𝔲𝔳𝔴𝔵𝔶𝔷"
	monoUpper = "𝙰𝙱𝙲𝙳𝙴𝙵𝙶𝙷𝙸𝙹𝙺𝙻𝙼𝙽𝙾𝙿𝚀𝚁𝚂𝚃𝚄𝚅𝚆𝚇𝚈𝚉"
	monoLower = "𝚊𝚋𝚌𝚍𝚎𝚏𝚐𝚑𝚒𝚓𝚔𝚕𝚖𝚗𝚘𝚙𝚚𝚛𝚜𝚝𝚞𝚟𝚠𝚡𝚢𝚣"
	monoDigits = "𝟶𝟷𝟸𝟹𝟺𝟻𝟼𝟽𝟾𝟿"
	dsUpper = "𝔸𝔹ℂ𝔻𝔼𝔽𝔾ℍ𝕀𝕁𝕂𝕃𝕄ℕ𝕆ℙℚℝ𝕊𝕋𝕌𝕍𝕎𝕏𝕐ℤ"
	dsLower = "𝕒𝕓𝕔𝕕𝕖𝕗𝕘𝕙𝕚𝕛𝕜𝕝𝕞𝕟𝕠𝕡𝕢𝕣𝕤𝕥𝕦𝕧𝕨𝕩𝕪𝕫"
	dsDigits = "𝟘𝟙𝟚𝟛𝟜𝟝𝟞𝟟𝟠𝟡"
)

// SerifBold includes digits and Greek letters.
var SerifBold = makeFont(
	[2]string{ASCIIUppercase, serifBoldUpper},
	[2]string{ASCIILowercase, serifBoldLower},
	[2]string{ASCIIDigits, serifBoldDigits},
	[2]string{GreekUppercase, serifBoldGreekUpper},
	[2]string{GreekLowercase, serifBoldGreekLower},
)

// SerifItalic includes Greek letters.
var SerifItalic = makeFont(
	[2]string{ASCIIUppercase, serifItalicUpper},
	[2]string{ASCIILowercase, serifItalicLower},
	[2]string{GreekUppercase, serifItalicGreekUpper},
	[2]string{GreekLowercase, serifItalicGreekLower},
)

// SerifBoldItalic includes Greek letters.
var SerifBoldItalic = makeFont(
	[2]string{ASCIIUppercase, serifBoldItalicUpper},
	[2]string{ASCIILowercase, serifBoldItalicLower},
	[2]string{GreekUppercase, serifBoldItalicGreekUpper},
	[2]string{GreekLowercase, serifBoldItalicGreekLower},
)

// SansSerif includes digits.
var SansSerif = makeFont(
	[2]string{ASCIIUppercase, sansUpper},
	[2]string{ASCIILowercase, sansLower},
	[2]string{ASCIIDigits, sansDigits},
)

// SansSerifBold includes digits.
var SansSerifBold = makeFont(
	[2]string{ASCIIUppercase, sansBoldUpper},
	[2]string{ASCIILowercase, sansBoldLower},
	[2]string{ASCIIDigits, sansBoldDigits},
)

// SansSerifItalic covers ASCII letters only.
var SansSerifItalic = makeFont(
	[2]string{ASCIIUppercase, sansItalicUpper},
	[2]string{ASCIILowercase, sansItalicLower},
)

// SansSerifBoldItalic includes Greek letters.
var SansSerifBoldItalic = makeFont(
	[2]string{ASCIIUppercase, sansBoldItalicUpper},
	[2]string{ASCIILowercase, sansBoldItalicLower},
	[2]string{GreekUppercase, sansBoldItalicGreekUpper},
	[2]string{GreekLowercase, sansBoldItalicGreekLower},
)

// Script covers ASCII letters only.
var Script = makeFont(
	[2]string{ASCIIUppercase, scriptUpper},
	[2]string{ASCIILowercase, scriptLower},
)

// Fraktur covers ASCII letters only.
var Fraktur = makeFont(
	[2]string{ASCIIUppercase, frakturUpper},
	[2]string{ASCIILowercase, frakturLower},
)

// Monospace includes digits.
var Monospace = makeFont(
	[2]string{ASCIIUppercase, monoUpper},
	[2]string{ASCIILowercase, monoLower},
	[2]string{ASCIIDigits, monoDigits},
)

// Doublestruck includes digits.
var Doublestruck = makeFont(
	[2]string{ASCIIUppercase, dsUpper},
	[2]string{ASCIILowercase, dsLower},
	[2]string{ASCIIDigits, dsDigits},
)
