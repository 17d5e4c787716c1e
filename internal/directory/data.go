package directory

// Calling codes are not unique across territories; country names are.
var countries = []CountryCode{
	{CallingCode: "+93", Alpha2: "AF", CountryName: "Afghanistan", FlagGlyph: "🇦🇫"},
	{CallingCode: "+355", Alpha2: "AL", CountryName: "Albania", FlagGlyph: "🇦🇱"},
	{CallingCode: "+213", Alpha2: "DZ", CountryName: "Algeria", FlagGlyph: "🇩🇿"},
	{CallingCode: "+376", Alpha2: "AD", CountryName: "Andorra", FlagGlyph: "🇦🇩"},
	{CallingCode: "+54", Alpha2: "AR", CountryName: "Argentina", FlagGlyph: "🇦🇷"},
	{CallingCode: "+374", Alpha2: "AM", CountryName: "Armenia", FlagGlyph: "🇦🇲"},
	{CallingCode: "+61", Alpha2: "AU", CountryName: "Australia", FlagGlyph: "🇦🇺"},
	{CallingCode: "+43", Alpha2: "AT", CountryName: "Austria", FlagGlyph: "🇦🇹"},
	{CallingCode: "+994", Alpha2: "AZ", CountryName: "Azerbaijan", FlagGlyph: "🇦🇿"},
	{CallingCode: "+973", Alpha2: "BH", CountryName: "Bahrain", FlagGlyph: "🇧🇭"},
	{CallingCode: "+880", Alpha2: "BD", CountryName: "Bangladesh", FlagGlyph: "🇧🇩"},
	{CallingCode: "+375", Alpha2: "BY", CountryName: "Belarus", FlagGlyph: "🇧🇾"},
	{CallingCode: "+32", Alpha2: "BE", CountryName: "Belgium", FlagGlyph: "🇧🇪"},
	{CallingCode: "+387", Alpha2: "BA", CountryName: "Bosnia and Herzegovina", FlagGlyph: "🇧🇦"},
	{CallingCode: "+55", Alpha2: "BR", CountryName: "Brazil", FlagGlyph: "🇧🇷"},
	{CallingCode: "+359", Alpha2: "BG", CountryName: "Bulgaria", FlagGlyph: "🇧🇬"},
	{CallingCode: "+855", Alpha2: "KH", CountryName: "Cambodia", FlagGlyph: "🇰🇭"},
	{CallingCode: "+237", Alpha2: "CM", CountryName: "Cameroon", FlagGlyph: "🇨🇲"},
	{CallingCode: "+1", Alpha2: "CA", CountryName: "Canada", FlagGlyph: "🇨🇦"},
	{CallingCode: "+56", Alpha2: "CL", CountryName: "Chile", FlagGlyph: "🇨🇱"},
	{CallingCode: "+86", Alpha2: "CN", CountryName: "China", FlagGlyph: "🇨🇳"},
	{CallingCode: "+57", Alpha2: "CO", CountryName: "Colombia", FlagGlyph: "🇨🇴"},
	{CallingCode: "+506", Alpha2: "CR", CountryName: "Costa Rica", FlagGlyph: "🇨🇷"},
	{CallingCode: "+385", Alpha2: "HR", CountryName: "Croatia", FlagGlyph: "🇭🇷"},
	{CallingCode: "+357", Alpha2: "CY", CountryName: "Cyprus", FlagGlyph: "🇨🇾"},
	{CallingCode: "+420", Alpha2: "CZ", CountryName: "Czechia", FlagGlyph: "🇨🇿"},
	{CallingCode: "+45", Alpha2: "DK", CountryName: "Denmark", FlagGlyph: "🇩🇰"},
	{CallingCode: "+20", Alpha2: "EG", CountryName: "Egypt", FlagGlyph: "🇪🇬"},
	{CallingCode: "+372", Alpha2: "EE", CountryName: "Estonia", FlagGlyph: "🇪🇪"},
	{CallingCode: "+251", Alpha2: "ET", CountryName: "Ethiopia", FlagGlyph: "🇪🇹"},
	{CallingCode: "+358", Alpha2: "FI", CountryName: "Finland", FlagGlyph: "🇫🇮"},
	{CallingCode: "+33", Alpha2: "FR", CountryName: "France", FlagGlyph: "🇫🇷"},
	{CallingCode: "+995", Alpha2: "GE", CountryName: "Georgia", FlagGlyph: "🇬🇪"},
	{CallingCode: "+49", Alpha2: "DE", CountryName: "Germany", FlagGlyph: "🇩🇪"},
	{CallingCode: "+233", Alpha2: "GH", CountryName: "Ghana", FlagGlyph: "🇬🇭"},
	{CallingCode: "+30", Alpha2: "GR", CountryName: "Greece", FlagGlyph: "🇬🇷"},
	{CallingCode: "+852", Alpha2: "HK", CountryName: "Hong Kong", FlagGlyph: "🇭🇰"},
	{CallingCode: "+36", Alpha2: "HU", CountryName: "Hungary", FlagGlyph: "🇭🇺"},
	{CallingCode: "+354", Alpha2: "IS", CountryName: "Iceland", FlagGlyph: "🇮🇸"},
	{CallingCode: "+91", Alpha2: "IN", CountryName: "India", FlagGlyph: "🇮🇳"},
	{CallingCode: "+62", Alpha2: "ID", CountryName: "Indonesia", FlagGlyph: "🇮🇩"},
	{CallingCode: "+98", Alpha2: "IR", CountryName: "Iran", FlagGlyph: "🇮🇷"},
	{CallingCode: "+964", Alpha2: "IQ", CountryName: "Iraq", FlagGlyph: "🇮🇶"},
	{CallingCode: "+353", Alpha2: "IE", CountryName: "Ireland", FlagGlyph: "🇮🇪"},
	{CallingCode: "+972", Alpha2: "IL", CountryName: "Israel", FlagGlyph: "🇮🇱"},
	{CallingCode: "+39", Alpha2: "IT", CountryName: "Italy", FlagGlyph: "🇮🇹"},
	{CallingCode: "+81", Alpha2: "JP", CountryName: "Japan", FlagGlyph: "🇯🇵"},
	{CallingCode: "+962", Alpha2: "JO", CountryName: "Jordan", FlagGlyph: "🇯🇴"},
	{CallingCode: "+7", Alpha2: "KZ", CountryName: "Kazakhstan", FlagGlyph: "🇰🇿"},
	{CallingCode: "+254", Alpha2: "KE", CountryName: "Kenya", FlagGlyph: "🇰🇪"},
	{CallingCode: "+965", Alpha2: "KW", CountryName: "Kuwait", FlagGlyph: "🇰🇼"},
	{CallingCode: "+371", Alpha2: "LV", CountryName: "Latvia", FlagGlyph: "🇱🇻"},
	{CallingCode: "+961", Alpha2: "LB", CountryName: "Lebanon", FlagGlyph: "🇱🇧"},
	{CallingCode: "+370", Alpha2: "LT", CountryName: "Lithuania", FlagGlyph: "🇱🇹"},
	{CallingCode: "+352", Alpha2: "LU", CountryName: "Luxembourg", FlagGlyph: "🇱🇺"},
	{CallingCode: "+60", Alpha2: "MY", CountryName: "Malaysia", FlagGlyph: "🇲🇾"},
	{CallingCode: "+356", Alpha2: "MT", CountryName: "Malta", FlagGlyph: "🇲🇹"},
	{CallingCode: "+52", Alpha2: "MX", CountryName: "Mexico", FlagGlyph: "🇲🇽"},
	{CallingCode: "+373", Alpha2: "MD", CountryName: "Moldova", FlagGlyph: "🇲🇩"},
	{CallingCode: "+377", Alpha2: "MC", CountryName: "Monaco", FlagGlyph: "🇲🇨"},
	{CallingCode: "+382", Alpha2: "ME", CountryName: "Montenegro", FlagGlyph: "🇲🇪"},
	{CallingCode: "+212", Alpha2: "MA", CountryName: "Morocco", FlagGlyph: "🇲🇦"},
	{CallingCode: "+31", Alpha2: "NL", CountryName: "Netherlands", FlagGlyph: "🇳🇱"},
	{CallingCode: "+64", Alpha2: "NZ", CountryName: "New Zealand", FlagGlyph: "🇳🇿"},
	{CallingCode: "+234", Alpha2: "NG", CountryName: "Nigeria", FlagGlyph: "🇳🇬"},
	{CallingCode: "+389", Alpha2: "MK", CountryName: "North Macedonia", FlagGlyph: "🇲🇰"},
	{CallingCode: "+47", Alpha2: "NO", CountryName: "Norway", FlagGlyph: "🇳🇴"},
	{CallingCode: "+968", Alpha2: "OM", CountryName: "Oman", FlagGlyph: "🇴🇲"},
	{CallingCode: "+92", Alpha2: "PK", CountryName: "Pakistan", FlagGlyph: "🇵🇰"},
	{CallingCode: "+507", Alpha2: "PA", CountryName: "Panama", FlagGlyph: "🇵🇦"},
	{CallingCode: "+51", Alpha2: "PE", CountryName: "Peru", FlagGlyph: "🇵🇪"},
	{CallingCode: "+63", Alpha2: "PH", CountryName: "Philippines", FlagGlyph: "🇵🇭"},
	{CallingCode: "+48", Alpha2: "PL", CountryName: "Poland", FlagGlyph: "🇵🇱"},
	{CallingCode: "+351", Alpha2: "PT", CountryName: "Portugal", FlagGlyph: "🇵🇹"},
	{CallingCode: "+974", Alpha2: "QA", CountryName: "Qatar", FlagGlyph: "🇶🇦"},
	{CallingCode: "+40", Alpha2: "RO", CountryName: "Romania", FlagGlyph: "🇷🇴"},
	{CallingCode: "+7", Alpha2: "RU", CountryName: "Russia", FlagGlyph: "🇷🇺"},
	{CallingCode: "+966", Alpha2: "SA", CountryName: "Saudi Arabia", FlagGlyph: "🇸🇦"},
	{CallingCode: "+381", Alpha2: "RS", CountryName: "Serbia", FlagGlyph: "🇷🇸"},
	{CallingCode: "+65", Alpha2: "SG", CountryName: "Singapore", FlagGlyph: "🇸🇬"},
	{CallingCode: "+421", Alpha2: "SK", CountryName: "Slovakia", FlagGlyph: "🇸🇰"},
	{CallingCode: "+386", Alpha2: "SI", CountryName: "Slovenia", FlagGlyph: "🇸🇮"},
	{CallingCode: "+27", Alpha2: "ZA", CountryName: "South Africa", FlagGlyph: "🇿🇦"},
	{CallingCode: "+82", Alpha2: "KR", CountryName: "South Korea", FlagGlyph: "🇰🇷"},
	{CallingCode: "+34", Alpha2: "ES", CountryName: "Spain", FlagGlyph: "🇪🇸"},
	{CallingCode: "+94", Alpha2: "LK", CountryName: "Sri Lanka", FlagGlyph: "🇱🇰"},
	{CallingCode: "+46", Alpha2: "SE", CountryName: "Sweden", FlagGlyph: "🇸🇪"},
	{CallingCode: "+41", Alpha2: "CH", CountryName: "Switzerland", FlagGlyph: "🇨🇭"},
	{CallingCode: "+886", Alpha2: "TW", CountryName: "Taiwan", FlagGlyph: "🇹🇼"},
	{CallingCode: "+66", Alpha2: "TH", CountryName: "Thailand", FlagGlyph: "🇹🇭"},
	{CallingCode: "+216", Alpha2: "TN", CountryName: "Tunisia", FlagGlyph: "🇹🇳"},
	{CallingCode: "+90", Alpha2: "TR", CountryName: "Turkey", FlagGlyph: "🇹🇷"},
	{CallingCode: "+380", Alpha2: "UA", CountryName: "Ukraine", FlagGlyph: "🇺🇦"},
	{CallingCode: "+971", Alpha2: "AE", CountryName: "United Arab Emirates", FlagGlyph: "🇦🇪"},
	{CallingCode: "+44", Alpha2: "GB", CountryName: "United Kingdom", FlagGlyph: "🇬🇧"},
	{CallingCode: "+1", Alpha2: "US", CountryName: "United States", FlagGlyph: "🇺🇸"},
	{CallingCode: "+598", Alpha2: "UY", CountryName: "Uruguay", FlagGlyph: "🇺🇾"},
	{CallingCode: "+998", Alpha2: "UZ", CountryName: "Uzbekistan", FlagGlyph: "🇺🇿"},
	{CallingCode: "+84", Alpha2: "VN", CountryName: "Vietnam", FlagGlyph: "🇻🇳"},
}
