package forecast

import "fmt"

// telopDescriptions maps JMA telop weather codes to their descriptions.
// Long-range sections carry only these codes, no weather text.
var telopDescriptions = map[string]string{
	"100": "晴れ",
	"101": "晴れ時々曇り",
	"102": "晴れ一時雨",
	"104": "晴れ一時雪",
	"110": "晴れ後時々曇り",
	"111": "晴れ後曇り",
	"112": "晴れ後一時雨",
	"115": "晴れ後一時雪",
	"200": "曇り",
	"201": "曇り時々晴れ",
	"202": "曇り一時雨",
	"204": "曇り一時雪",
	"210": "曇り後時々晴れ",
	"211": "曇り後晴れ",
	"212": "曇り後一時雨",
	"215": "曇り後一時雪",
	"300": "雨",
	"301": "雨時々晴れ",
	"302": "雨時々止む",
	"303": "雨時々雪",
	"308": "雨で暴風を伴う",
	"311": "雨後晴れ",
	"313": "雨後曇り",
	"314": "雨後時々雪",
	"400": "雪",
	"401": "雪時々晴れ",
	"402": "雪時々止む",
	"403": "雪時々雨",
	"406": "風雪強い",
	"411": "雪後晴れ",
	"413": "雪後曇り",
	"414": "雪後雨",
}

// CodeDescription resolves a JMA weather code to its description. Unknown
// codes yield a placeholder embedding the code rather than an error, so a
// feed extension never breaks a whole bulletin.
func CodeDescription(code string) string {
	if desc, ok := telopDescriptions[code]; ok {
		return desc
	}
	return fmt.Sprintf("unknown(%s)", code)
}
